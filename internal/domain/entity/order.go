package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain"
)

// CreatedAtLayout formato de fecha-hora que el backend persiste y devuelve.
const CreatedAtLayout = "2006-01-02 15:04"

// Order pedido de la cafetería con sus líneas. En GET /orders las líneas
// vienen con el nombre del café ya unido por el backend; en las respuestas
// de POST/PUT solo traen item_id y qty, y el nombre se resuelve localmente
// contra el catálogo.
type Order struct {
	OrderID      int         `json:"order_id"`
	CustomerName string      `json:"customer_name"`
	CreatedAt    string      `json:"created_at"`
	Status       Status      `json:"status"`
	Items        []OrderItem `json:"items"`
}

// OrderItem línea {item_id, qty} de un pedido. Name es opcional: referencia
// débil al catálogo, solo para presentación.
type OrderItem struct {
	ItemID int    `json:"item_id"`
	Name   string `json:"name,omitempty"`
	Qty    int    `json:"qty"`
}

// StockLookup capacidad de consulta sobre el catálogo por id.
type StockLookup func(itemID int) (StockItem, bool)

// ItemsList representación "<name> (x<qty>)" de las líneas, unida por ", ".
// Si la línea no trae nombre se resuelve con lookup; sin coincidencia se
// muestra "Unknown".
func (o Order) ItemsList(lookup StockLookup) string {
	parts := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		name := it.Name
		if name == "" {
			if s, ok := lookup(it.ItemID); ok {
				name = s.Name
			} else {
				name = "Unknown"
			}
		}
		parts = append(parts, fmt.Sprintf("%s (x%d)", name, it.Qty))
	}
	return strings.Join(parts, ", ")
}

// CreatedAtTime parsea created_at al tipo tiempo (para reconstruir el valor
// del selector al editar).
func (o Order) CreatedAtTime() (time.Time, error) {
	return time.Parse(CreatedAtLayout, o.CreatedAt)
}

// CheckShape valida la forma mínima del payload (frontera fail-closed).
func (o *Order) CheckShape() error {
	if o.OrderID <= 0 {
		return fmt.Errorf("%w: order sin order_id", domain.ErrBadPayload)
	}
	if o.CustomerName == "" {
		return fmt.Errorf("%w: order %d sin customer_name", domain.ErrBadPayload, o.OrderID)
	}
	for i, it := range o.Items {
		if it.ItemID <= 0 {
			return fmt.Errorf("%w: order %d línea %d sin item_id", domain.ErrBadPayload, o.OrderID, i)
		}
		if it.Qty < 1 {
			return fmt.Errorf("%w: order %d línea %d con qty < 1", domain.ErrBadPayload, o.OrderID, i)
		}
	}
	return nil
}

// ParseOrder decodifica un pedido aplicando CheckShape.
func ParseOrder(data []byte) (*Order, error) {
	var o Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("order: decodificar: %w", err)
	}
	if err := o.CheckShape(); err != nil {
		return nil, err
	}
	return &o, nil
}
