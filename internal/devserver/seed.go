package devserver

import (
	"github.com/shopspring/decimal"
)

// Seed carga datos de muestra si la base está vacía: catálogo de cafés,
// algunos clientes y un pedido inicial.
func (s *Server) Seed() error {
	var count int64
	if err := s.db.Model(&Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []Item{
		{Name: "Arabica", Origin: "Brazil", Stock: 5, Price: decimal.NewFromInt(50000)},
		{Name: "Robusta", Origin: "Vietnam", Stock: 12, Price: decimal.NewFromInt(35000)},
		{Name: "Gayo", Origin: "Aceh", Stock: 8, Price: decimal.NewFromInt(65000)},
		{Name: "Toraja", Origin: "Sulawesi", Stock: 0, Price: decimal.NewFromInt(72000)},
	}
	if err := s.db.Create(&items).Error; err != nil {
		return err
	}

	users := []User{
		{Username: "budi88", Name: "Budi Santoso", Email: "budi@example.com", Phone: "+628123456789"},
		{Username: "sari.k", Name: "Sari Kusuma", Email: "sari@example.com", Phone: "081234567890"},
	}
	if err := s.db.Create(&users).Error; err != nil {
		return err
	}

	order := Order{CustomerName: "Budi Santoso", CreatedAt: "2025-08-01 09:30", Status: "PENDING"}
	if err := s.db.Create(&order).Error; err != nil {
		return err
	}
	lines := []OrderItem{
		{OrderID: order.ID, ItemID: items[1].ID, Qty: 2},
	}
	if err := s.db.Create(&lines).Error; err != nil {
		return err
	}

	s.log.Info().Int("items", len(items)).Int("users", len(users)).Msg("datos de muestra cargados")
	return nil
}
