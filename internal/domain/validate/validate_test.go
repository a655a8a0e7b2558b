package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
	"github.com/jhoicas/beanbrews-backoffice/internal/domain/validate"
)

func TestCustomerValid(t *testing.T) {
	errs := validate.Customer("budi88", "Budi Santoso", "budi@example.com", "+628123456789")
	assert.Empty(t, errs, "un formulario completo y bien formado no debe dar errores")
}

func TestCustomerRequiredFields(t *testing.T) {
	errs := validate.Customer("", "", "", "")
	require.Len(t, errs, 4)
	assert.Equal(t, "Username is required", errs.ByField("username"))
	assert.Equal(t, "Name is required", errs.ByField("name"))
	assert.Equal(t, "Email is required", errs.ByField("email"))
	assert.Equal(t, "Phone is required", errs.ByField("phone"))
}

func TestCustomerEmailFormat(t *testing.T) {
	for _, bad := range []string{"budi", "budi@", "@example.com", "budi@example", "a b@example.com"} {
		errs := validate.Customer("budi88", "Budi", bad, "+628123456789")
		assert.Equal(t, "Invalid email format!", errs.ByField("email"), "email %q", bad)
	}
	errs := validate.Customer("budi88", "Budi", "budi@example.co.id", "+628123456789")
	assert.False(t, errs.Has("email"))
}

func TestCustomerPhoneFormat(t *testing.T) {
	// el patrón admite un + opcional y de 9 a 15 dígitos
	for _, ok := range []string{"123456789", "+628123456789", "123456789012345"} {
		errs := validate.Customer("budi88", "Budi", "budi@example.com", ok)
		assert.False(t, errs.Has("phone"), "teléfono %q debería ser válido", ok)
	}
	for _, bad := range []string{"12345678", "1234567890123456", "+62-812345678", "ochocientos"} {
		errs := validate.Customer("budi88", "Budi", "budi@example.com", bad)
		assert.Equal(t, "Invalid phone number format!", errs.ByField("phone"), "teléfono %q", bad)
	}
}

func TestStockItemNumericFields(t *testing.T) {
	assert.Empty(t, validate.StockItem("Arabica", "Brazil", "5", "50000"))

	errs := validate.StockItem("Arabica", "Brazil", "cinco", "50000")
	assert.Equal(t, "Stock must be a non-negative number", errs.ByField("stock"))

	errs = validate.StockItem("Arabica", "Brazil", "-1", "50000")
	assert.Equal(t, "Stock must be a non-negative number", errs.ByField("stock"))

	errs = validate.StockItem("Arabica", "Brazil", "5", "caro")
	assert.Equal(t, "Price must be a number", errs.ByField("price"))

	errs = validate.StockItem("", "", "", "")
	assert.Equal(t, "Coffee name is required", errs.ByField("name"))
	assert.Equal(t, "Coffee origin is required", errs.ByField("origin"))
	assert.Equal(t, "Stock qty is required", errs.ByField("stock"))
	assert.Equal(t, "Price is required", errs.ByField("price"))
}

// lookupWith catálogo fijo para las pruebas de líneas.
func lookupWith(items ...entity.StockItem) entity.StockLookup {
	byID := make(map[int]entity.StockItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return func(id int) (entity.StockItem, bool) {
		it, ok := byID[id]
		return it, ok
	}
}

func TestOrderLineQtyAgainstStock(t *testing.T) {
	lookup := lookupWith(entity.StockItem{ID: 1, Name: "Arabica", Stock: 5})

	// exactamente el stock disponible pasa
	errs := validate.OrderLine(0, validate.OrderLineInput{ItemID: 1, Qty: "5"}, lookup)
	assert.Empty(t, errs)

	// uno por encima del stock se bloquea con el tope en el mensaje
	errs = validate.OrderLine(0, validate.OrderLineInput{ItemID: 1, Qty: "6"}, lookup)
	assert.Equal(t, "Qty cannot exceed current stock (5)", errs.ByField("items[0].qty"))

	errs = validate.OrderLine(0, validate.OrderLineInput{ItemID: 1, Qty: "0"}, lookup)
	assert.Equal(t, "Qty must be at least 1", errs.ByField("items[0].qty"))

	errs = validate.OrderLine(0, validate.OrderLineInput{ItemID: 1, Qty: ""}, lookup)
	assert.Equal(t, "Quantity required", errs.ByField("items[0].qty"))

	errs = validate.OrderLine(2, validate.OrderLineInput{ItemID: 0, Qty: "1"}, lookup)
	assert.Equal(t, "Select a coffee", errs.ByField("items[2].item"))
}

func TestOrderLineUnknownItemSkipsCeiling(t *testing.T) {
	// sin café en el catálogo no hay tope que aplicar; el requerido de
	// selección ya cubre el caso
	errs := validate.OrderLine(0, validate.OrderLineInput{ItemID: 42, Qty: "99"}, lookupWith())
	assert.False(t, errs.Has("items[0].qty"))
}

func TestOrderForm(t *testing.T) {
	lookup := lookupWith(entity.StockItem{ID: 1, Name: "Arabica", Stock: 5})

	valid := validate.OrderForm{
		CustomerName: "Budi",
		CreatedAt:    "2025-08-01 09:30",
		Status:       "PENDING",
		Lines:        []validate.OrderLineInput{{ItemID: 1, Qty: "2"}},
	}
	assert.Empty(t, validate.Order(valid, lookup))

	empty := validate.Order(validate.OrderForm{}, lookup)
	assert.Equal(t, "Please input customer name!", empty.ByField("customer_name"))
	assert.Equal(t, "Please select date and time!", empty.ByField("created_at"))
	assert.Equal(t, "Please select status", empty.ByField("status"))
	assert.Equal(t, "Add at least one coffee", empty.ByField("items"))

	badDate := valid
	badDate.CreatedAt = "01/08/2025 09:30"
	assert.Equal(t, "Use format YYYY-MM-DD HH:MM", validate.Order(badDate, lookup).ByField("created_at"))
}
