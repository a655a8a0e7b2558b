package rest

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
)

// OrderFields payload de creación/edición de pedidos. El backend espera las
// líneas bajo la clave "order_items" y created_at en RFC3339; lo normaliza a
// "2006-01-02 15:04" al persistir.
type OrderFields struct {
	CustomerName string            `json:"customer_name"`
	CreatedAt    string            `json:"created_at"`
	Status       entity.Status     `json:"status"`
	Items        []OrderLineFields `json:"order_items"`
}

// OrderLineFields línea {item_id, qty} del payload.
type OrderLineFields struct {
	ItemID int `json:"item_id"`
	Qty    int `json:"qty"`
}

// ListOrders GET /orders.
func (c *Client) ListOrders() ([]entity.Order, error) {
	raw, err := c.do(fiber.MethodGet, "/orders", nil)
	if err != nil {
		return nil, err
	}
	var list []entity.Order
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("orders: decodificar lista: %w", err)
	}
	for i := range list {
		if err := list[i].CheckShape(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// CreateOrder POST /orders. La respuesta trae las líneas sin nombre; el
// nombre se resuelve localmente contra el snapshot del catálogo.
func (c *Client) CreateOrder(f OrderFields) (*entity.Order, error) {
	raw, err := c.do(fiber.MethodPost, "/orders", f)
	if err != nil {
		return nil, err
	}
	return entity.ParseOrder(raw)
}

// UpdateOrder PUT /orders/{id}.
func (c *Client) UpdateOrder(id int, f OrderFields) (*entity.Order, error) {
	raw, err := c.do(fiber.MethodPut, fmt.Sprintf("/orders/%d", id), f)
	if err != nil {
		return nil, err
	}
	return entity.ParseOrder(raw)
}

// DeleteOrder DELETE /orders/{id}.
func (c *Client) DeleteOrder(id int) error {
	_, err := c.do(fiber.MethodDelete, fmt.Sprintf("/orders/%d", id), nil)
	return err
}
