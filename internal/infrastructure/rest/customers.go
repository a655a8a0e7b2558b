package rest

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
)

// CustomerFields campos del formulario de cliente.
type CustomerFields struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// ListCustomers GET /users.
func (c *Client) ListCustomers() ([]entity.Customer, error) {
	raw, err := c.do(fiber.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	var list []entity.Customer
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("customers: decodificar lista: %w", err)
	}
	for i := range list {
		if err := list[i].CheckShape(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// CreateCustomer POST /users. Devuelve el cliente con el id asignado por el
// backend, listo para parchear el estado local.
func (c *Client) CreateCustomer(f CustomerFields) (*entity.Customer, error) {
	raw, err := c.do(fiber.MethodPost, "/users", f)
	if err != nil {
		return nil, err
	}
	return entity.ParseCustomer(raw)
}

// UpdateCustomer PUT /users/{id}.
func (c *Client) UpdateCustomer(id int, f CustomerFields) (*entity.Customer, error) {
	raw, err := c.do(fiber.MethodPut, fmt.Sprintf("/users/%d", id), f)
	if err != nil {
		return nil, err
	}
	return entity.ParseCustomer(raw)
}

// DeleteCustomer DELETE /users/{id}.
func (c *Client) DeleteCustomer(id int) error {
	_, err := c.do(fiber.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	return err
}
