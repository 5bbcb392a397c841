// Package order holds storefront orders and the per-customer cart.
package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the storefront order lifecycle. This enum is distinct from the
// ticket status enum; only orders have a cancelled state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem snapshots the product price at order time.
type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID           uint
	CustomerID   uint
	Status       Status
	Items        []OrderItem
	DeliveryDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewOrder(customerID uint, items []OrderItem) (*Order, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("order requires at least one item")
	}
	return &Order{
		CustomerID: customerID,
		Status:     StatusPending,
		Items:      items,
	}, nil
}

// TotalAmount is recomputed from the item rows.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Cancel marks the order cancelled. Delivered orders cannot be cancelled.
func (o *Order) Cancel() error {
	if o.Status == StatusDelivered {
		return fmt.Errorf("order cannot be cancelled after delivery")
	}
	o.Status = StatusCancelled
	return nil
}

// Cart is the per-customer shopping cart. One cart per customer.
type Cart struct {
	ID         uint
	CustomerID uint
	Items      []CartItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CartItem is unique per (cart, product); adding an existing product
// accumulates quantity.
type CartItem struct {
	ID        uint
	CartID    uint
	ProductID uint
	Quantity  int
	AddedAt   time.Time
}
