package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex;not null"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type ProductModel struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:100;not null"`
	ImageURL    string          `gorm:"size:500"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string          `gorm:"type:text"`
	CategoryID  uint            `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

type OrderModel struct {
	ID           uint   `gorm:"primaryKey"`
	CustomerID   uint   `gorm:"index;not null"`
	Status       string `gorm:"size:20;not null;index;default:pending"`
	Items        []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	DeliveryDate *time.Time
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID        uint            `gorm:"primaryKey"`
	OrderID   uint            `gorm:"index;not null"`
	ProductID uint            `gorm:"index;not null"`
	Quantity  int             `gorm:"not null;default:1"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

type CartModel struct {
	ID         uint            `gorm:"primaryKey"`
	CustomerID uint            `gorm:"uniqueIndex;not null"`
	Items      []CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CartModel) TableName() string {
	return "carts"
}

type CartItemModel struct {
	ID        uint `gorm:"primaryKey"`
	CartID    uint `gorm:"uniqueIndex:idx_cart_product;not null"`
	ProductID uint `gorm:"uniqueIndex:idx_cart_product;not null"`
	Quantity  int  `gorm:"not null;default:1"`
	AddedAt   time.Time
}

func (CartItemModel) TableName() string {
	return "cart_items"
}
