package devserver

import "github.com/shopspring/decimal"

// Modelos GORM con los mismos nombres de tabla y columnas que el esquema
// del backend real.

// User cliente registrado (tabla users).
type User struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
}

// TableName nombre de tabla del esquema del backend real.
func (User) TableName() string { return "users" }

// Item café del catálogo (tabla items).
type Item struct {
	ID     int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string          `gorm:"not null" json:"name"`
	Origin string          `gorm:"not null" json:"origin"`
	Stock  int             `gorm:"not null;default:0" json:"stock"`
	Price  decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
}

func (Item) TableName() string { return "items" }

// Order cabecera de pedido (tabla orders). created_at se guarda ya
// normalizado a "2006-01-02 15:04".
type Order struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"order_id"`
	CustomerName string `gorm:"not null" json:"customer_name"`
	CreatedAt    string `gorm:"not null" json:"created_at"`
	Status       string `gorm:"not null" json:"status"`
}

func (Order) TableName() string { return "orders" }

// OrderItem línea de pedido (tabla order_items).
type OrderItem struct {
	ID      int `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID int `gorm:"not null;index" json:"-"`
	ItemID  int `gorm:"not null" json:"item_id"`
	Qty     int `gorm:"not null" json:"qty"`
}

func (OrderItem) TableName() string { return "order_items" }
