// Package validate contiene la validación de formularios del back-office
// como funciones puras, independientes de la UI, para poder probarlas en
// aislamiento. Los mensajes se muestran tal cual junto al campo ofensor.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^\+?\d{9,15}$`)
)

// FieldError error de validación asociado a un campo concreto.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors conjunto de errores de un formulario, en orden de aparición.
type Errors []FieldError

// ByField devuelve el primer mensaje asociado al campo, o "".
func (e Errors) ByField(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Has indica si hay algún error para el campo.
func (e Errors) Has(field string) bool {
	return e.ByField(field) != ""
}

// Customer valida los campos del formulario de cliente antes de enviar
// cualquier petición.
func Customer(username, name, email, phone string) Errors {
	var errs Errors
	if strings.TrimSpace(username) == "" {
		errs = append(errs, FieldError{"username", "Username is required"})
	}
	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{"name", "Name is required"})
	}
	switch {
	case strings.TrimSpace(email) == "":
		errs = append(errs, FieldError{"email", "Email is required"})
	case !emailRe.MatchString(email):
		errs = append(errs, FieldError{"email", "Invalid email format!"})
	}
	switch {
	case strings.TrimSpace(phone) == "":
		errs = append(errs, FieldError{"phone", "Phone is required"})
	case !phoneRe.MatchString(phone):
		errs = append(errs, FieldError{"phone", "Invalid phone number format!"})
	}
	return errs
}

// StockItem valida el formulario de catálogo. Los campos numéricos llegan
// como texto libre; además del requerido se exige que parseen, porque la
// frontera tipada no admite basura como hacía el backend dinámico.
func StockItem(name, origin, stock, price string) Errors {
	var errs Errors
	if strings.TrimSpace(name) == "" {
		errs = append(errs, FieldError{"name", "Coffee name is required"})
	}
	if strings.TrimSpace(origin) == "" {
		errs = append(errs, FieldError{"origin", "Coffee origin is required"})
	}
	switch {
	case strings.TrimSpace(stock) == "":
		errs = append(errs, FieldError{"stock", "Stock qty is required"})
	default:
		if n, err := strconv.Atoi(strings.TrimSpace(stock)); err != nil || n < 0 {
			errs = append(errs, FieldError{"stock", "Stock must be a non-negative number"})
		}
	}
	switch {
	case strings.TrimSpace(price) == "":
		errs = append(errs, FieldError{"price", "Price is required"})
	default:
		if _, err := strconv.ParseFloat(strings.TrimSpace(price), 64); err != nil {
			errs = append(errs, FieldError{"price", "Price must be a number"})
		}
	}
	return errs
}

// OrderLineInput valores actuales de una línea del formulario de pedido.
// ItemID 0 significa que aún no se seleccionó café.
type OrderLineInput struct {
	ItemID int
	Qty    string
}

// OrderForm valores actuales del formulario completo de pedido.
type OrderForm struct {
	CustomerName string
	CreatedAt    string
	Status       string
	Lines        []OrderLineInput
}

// LineItemField nombre de campo para la línea i ("items[i].item" /
// "items[i].qty").
func LineItemField(i int, sub string) string {
	return fmt.Sprintf("items[%d].%s", i, sub)
}

// OrderLine valida una línea contra el tope de stock del café seleccionado
// en esa misma línea. Se revalida en vivo si el usuario cambia la selección
// después de escribir la cantidad.
func OrderLine(i int, line OrderLineInput, lookup entity.StockLookup) Errors {
	var errs Errors
	if line.ItemID <= 0 {
		errs = append(errs, FieldError{LineItemField(i, "item"), "Select a coffee"})
	}
	qty := strings.TrimSpace(line.Qty)
	if qty == "" {
		errs = append(errs, FieldError{LineItemField(i, "qty"), "Quantity required"})
		return errs
	}
	n, err := strconv.Atoi(qty)
	if err != nil || n < 1 {
		errs = append(errs, FieldError{LineItemField(i, "qty"), "Qty must be at least 1"})
		return errs
	}
	if item, ok := lookup(line.ItemID); ok && n > item.Stock {
		errs = append(errs, FieldError{
			LineItemField(i, "qty"),
			fmt.Sprintf("Qty cannot exceed current stock (%d)", item.Stock),
		})
	}
	return errs
}

// Order valida el formulario de pedido completo antes del envío.
func Order(f OrderForm, lookup entity.StockLookup) Errors {
	var errs Errors
	if strings.TrimSpace(f.CustomerName) == "" {
		errs = append(errs, FieldError{"customer_name", "Please input customer name!"})
	}
	switch {
	case strings.TrimSpace(f.CreatedAt) == "":
		errs = append(errs, FieldError{"created_at", "Please select date and time!"})
	default:
		if _, err := time.Parse(entity.CreatedAtLayout, strings.TrimSpace(f.CreatedAt)); err != nil {
			errs = append(errs, FieldError{"created_at", "Use format YYYY-MM-DD HH:MM"})
		}
	}
	if strings.TrimSpace(f.Status) == "" {
		errs = append(errs, FieldError{"status", "Please select status"})
	}
	if len(f.Lines) == 0 {
		errs = append(errs, FieldError{"items", "Add at least one coffee"})
	}
	for i, line := range f.Lines {
		errs = append(errs, OrderLine(i, line, lookup)...)
	}
	return errs
}
