package devserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jhoicas/beanbrews-backoffice/internal/domain/entity"
)

type orderRequest struct {
	CustomerName string             `json:"customer_name"`
	CreatedAt    string             `json:"created_at"`
	Status       string             `json:"status"`
	Items        []orderItemRequest `json:"order_items"`
}

type orderItemRequest struct {
	ItemID int `json:"item_id"`
	Qty    int `json:"qty"`
}

// joinedItem línea de pedido con los datos del café ya unidos.
type joinedItem struct {
	ItemID int             `json:"item_id"`
	Name   string          `json:"name"`
	Origin string          `json:"origin"`
	Qty    int             `json:"qty"`
	Price  decimal.Decimal `json:"price"`
}

// normalizeCreatedAt acepta RFC3339 (lo que envía el formulario) o el
// formato ya persistido, y lo normaliza a "2006-01-02 15:04".
func normalizeCreatedAt(raw string) (string, error) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		entity.CreatedAtLayout,
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(entity.CreatedAtLayout), nil
		}
	}
	return "", fmt.Errorf("invalid created_at %q", raw)
}

// listOrders GET /orders — pedidos más recientes primero, con las líneas
// unidas contra items. El JOIN es interno: un pedido sin líneas no aparece
// en el listado.
func (s *Server) listOrders(c *fiber.Ctx) error {
	var orders []Order
	if err := s.db.Order("id DESC").Find(&orders).Error; err != nil {
		return fail(c, err.Error())
	}

	out := make([]fiber.Map, 0, len(orders))
	for _, o := range orders {
		var items []joinedItem
		err := s.db.Table("order_items").
			Select("order_items.item_id, items.name, items.origin, order_items.qty, items.price").
			Joins("JOIN items ON items.id = order_items.item_id").
			Where("order_items.order_id = ?", o.ID).
			Scan(&items).Error
		if err != nil {
			return fail(c, err.Error())
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, fiber.Map{
			"order_id":      o.ID,
			"customer_name": o.CustomerName,
			"created_at":    o.CreatedAt,
			"status":        o.Status,
			"items":         items,
		})
	}
	return c.JSON(out)
}

// applyLine verifica existencia y stock del café, inserta la línea y
// descuenta el stock. Los mensajes calcan los del backend real.
func applyLine(tx *gorm.DB, orderID int, line orderItemRequest) error {
	var item Item
	if err := tx.First(&item, line.ItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("Item %d not found", line.ItemID)
		}
		return err
	}
	if item.Stock < line.Qty {
		return fmt.Errorf("Not enough stock for item %d", line.ItemID)
	}
	if err := tx.Create(&OrderItem{OrderID: orderID, ItemID: line.ItemID, Qty: line.Qty}).Error; err != nil {
		return err
	}
	return tx.Model(&Item{}).
		Where("id = ? AND stock >= ?", line.ItemID, line.Qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", line.Qty)).Error
}

// createOrder POST /orders — descuenta stock por cada línea, todo o nada.
func (s *Server) createOrder(c *fiber.Ctx) error {
	var in orderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, "invalid body")
	}
	if in.CustomerName == "" || len(in.Items) == 0 {
		return fail(c, "customer_name and items are required")
	}
	createdAt, err := normalizeCreatedAt(in.CreatedAt)
	if err != nil {
		return fail(c, err.Error())
	}

	order := Order{CustomerName: in.CustomerName, CreatedAt: createdAt, Status: in.Status}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range in.Items {
			if err := applyLine(tx, order.ID, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fail(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"order_id":      order.ID,
		"customer_name": order.CustomerName,
		"created_at":    order.CreatedAt,
		"status":        order.Status,
		"items":         in.Items,
	})
}

// updateOrder PUT /orders/{id} — devuelve el stock de las líneas viejas,
// las reemplaza y vuelve a descontar.
func (s *Server) updateOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, "invalid id")
	}
	var in orderRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, "invalid body")
	}
	if in.CustomerName == "" || len(in.Items) == 0 {
		return fail(c, "customer_name and items are required")
	}
	createdAt, err := normalizeCreatedAt(in.CreatedAt)
	if err != nil {
		return fail(c, err.Error())
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var order Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("Order %d not found", id)
			}
			return err
		}

		var oldItems []OrderItem
		if err := tx.Where("order_id = ?", id).Find(&oldItems).Error; err != nil {
			return err
		}
		for _, old := range oldItems {
			err := tx.Model(&Item{}).
				Where("id = ?", old.ItemID).
				UpdateColumn("stock", gorm.Expr("stock + ?", old.Qty)).Error
			if err != nil {
				return err
			}
		}
		if err := tx.Where("order_id = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return err
		}

		updates := map[string]any{
			"customer_name": in.CustomerName,
			"created_at":    createdAt,
			"status":        in.Status,
		}
		if err := tx.Model(&Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		for _, line := range in.Items {
			if err := applyLine(tx, id, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fail(c, err.Error())
	}

	return c.JSON(fiber.Map{
		"message":       "Order updated",
		"order_id":      id,
		"customer_name": in.CustomerName,
		"created_at":    createdAt,
		"status":        in.Status,
		"items":         in.Items,
	})
}

// deleteOrder DELETE /orders/{id}
func (s *Server) deleteOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, "invalid id")
	}

	var order Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, "Order does not exist!")
		}
		return fail(c, err.Error())
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Order{}, id).Error
	})
	if err != nil {
		return fail(c, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Order deleted successfully"})
}
