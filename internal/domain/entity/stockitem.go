package entity

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain"
)

// StockItem representa un café del catálogo: existencias en bolsas y
// precio por bolsa.
type StockItem struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Origin string          `json:"origin"`
	Stock  int             `json:"stock"`
	Price  decimal.Decimal `json:"price"`
}

// DisplayStock regla de presentación del inventario: 0 existencias se marca
// SOLD OUT; en otro caso "<n> bags". La pluralización es literal ("1 bags").
func (s StockItem) DisplayStock() string {
	if s.Stock <= 0 {
		return "SOLD OUT"
	}
	return fmt.Sprintf("%d bags", s.Stock)
}

// CheckShape valida la forma mínima del payload (frontera fail-closed).
func (s *StockItem) CheckShape() error {
	if s.ID <= 0 {
		return fmt.Errorf("%w: stock item sin id", domain.ErrBadPayload)
	}
	if s.Name == "" {
		return fmt.Errorf("%w: stock item %d sin nombre", domain.ErrBadPayload, s.ID)
	}
	if s.Stock < 0 {
		return fmt.Errorf("%w: stock item %d con stock negativo", domain.ErrBadPayload, s.ID)
	}
	return nil
}

// ParseStockItem decodifica un café aplicando CheckShape.
func ParseStockItem(data []byte) (*StockItem, error) {
	var s StockItem
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("stock item: decodificar: %w", err)
	}
	if err := s.CheckShape(); err != nil {
		return nil, err
	}
	return &s, nil
}
