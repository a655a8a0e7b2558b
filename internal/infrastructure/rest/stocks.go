package rest

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
)

// StockFields campos del formulario de catálogo.
type StockFields struct {
	Name   string          `json:"name"`
	Origin string          `json:"origin"`
	Stock  int             `json:"stock"`
	Price  decimal.Decimal `json:"price"`
}

// ListStocks GET /stocks.
func (c *Client) ListStocks() ([]entity.StockItem, error) {
	raw, err := c.do(fiber.MethodGet, "/stocks", nil)
	if err != nil {
		return nil, err
	}
	var list []entity.StockItem
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("stocks: decodificar lista: %w", err)
	}
	for i := range list {
		if err := list[i].CheckShape(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// CreateStock POST /stocks.
func (c *Client) CreateStock(f StockFields) (*entity.StockItem, error) {
	raw, err := c.do(fiber.MethodPost, "/stocks", f)
	if err != nil {
		return nil, err
	}
	return entity.ParseStockItem(raw)
}

// UpdateStock PUT /stocks/{id}.
func (c *Client) UpdateStock(id int, f StockFields) (*entity.StockItem, error) {
	raw, err := c.do(fiber.MethodPut, fmt.Sprintf("/stocks/%d", id), f)
	if err != nil {
		return nil, err
	}
	return entity.ParseStockItem(raw)
}

// DeleteStock DELETE /stocks/{id}.
func (c *Client) DeleteStock(id int) error {
	_, err := c.do(fiber.MethodDelete, fmt.Sprintf("/stocks/%d", id), nil)
	return err
}
