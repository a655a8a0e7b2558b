package devserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type itemRequest struct {
	Name   string          `json:"name"`
	Origin string          `json:"origin"`
	Stock  int             `json:"stock"`
	Price  decimal.Decimal `json:"price"`
}

// listItems GET /stocks
func (s *Server) listItems(c *fiber.Ctx) error {
	var items []Item
	if err := s.db.Find(&items).Error; err != nil {
		return fail(c, err.Error())
	}
	return c.JSON(items)
}

// createItem POST /stocks
func (s *Server) createItem(c *fiber.Ctx) error {
	var in itemRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, "invalid body")
	}
	item := Item{Name: in.Name, Origin: in.Origin, Stock: in.Stock, Price: in.Price}
	if err := s.db.Create(&item).Error; err != nil {
		return fail(c, err.Error())
	}
	return c.JSON(item)
}

// updateItem PUT /stocks/{id}
func (s *Server) updateItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, "invalid id")
	}
	var in itemRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, "invalid body")
	}
	updates := map[string]any{
		"name":   in.Name,
		"origin": in.Origin,
		"stock":  in.Stock,
		"price":  in.Price,
	}
	if err := s.db.Model(&Item{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fail(c, err.Error())
	}
	return c.JSON(fiber.Map{
		"id":     id,
		"name":   in.Name,
		"origin": in.Origin,
		"stock":  in.Stock,
		"price":  in.Price,
	})
}

// deleteItem DELETE /stocks/{id}
func (s *Server) deleteItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, "invalid id")
	}

	var item Item
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, "Item does not exist!")
		}
		return fail(c, err.Error())
	}
	if err := s.db.Delete(&Item{}, id).Error; err != nil {
		return fail(c, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Items deleted successfully"})
}
