package entity

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain"
)

// Customer representa un cliente registrado de la cafetería.
type Customer struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CheckShape valida la forma mínima del payload en la frontera: el backend
// es dinámico y la decodificación debe fallar cerrada en vez de confiar en
// que los campos existan.
func (c *Customer) CheckShape() error {
	if c.ID <= 0 {
		return fmt.Errorf("%w: customer sin id", domain.ErrBadPayload)
	}
	if c.Username == "" {
		return fmt.Errorf("%w: customer %d sin username", domain.ErrBadPayload, c.ID)
	}
	return nil
}

// ParseCustomer decodifica un cliente aplicando CheckShape.
func ParseCustomer(data []byte) (*Customer, error) {
	var c Customer
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("customer: decodificar: %w", err)
	}
	if err := c.CheckShape(); err != nil {
		return nil, err
	}
	return &c, nil
}
