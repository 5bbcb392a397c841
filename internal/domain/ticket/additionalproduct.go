package ticket

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AdditionalProduct is a part sold against a ticket during a visit. It is
// independent of the quotation and can be appended at any ticket status.
type AdditionalProduct struct {
	id          uint
	ticketID    uint
	name        string
	description string
	price       decimal.Decimal
	quantity    int
	soldAt      time.Time
}

func NewAdditionalProduct(ticketID uint, name, description string, price decimal.Decimal, quantity int) (*AdditionalProduct, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("product name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("product name exceeds maximum length of 100 characters")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	return &AdditionalProduct{
		ticketID:    ticketID,
		name:        name,
		description: description,
		price:       price,
		quantity:    quantity,
		soldAt:      time.Now(),
	}, nil
}

func ReconstructAdditionalProduct(
	id uint,
	ticketID uint,
	name, description string,
	price decimal.Decimal,
	quantity int,
	soldAt time.Time,
) *AdditionalProduct {
	return &AdditionalProduct{
		id:          id,
		ticketID:    ticketID,
		name:        name,
		description: description,
		price:       price,
		quantity:    quantity,
		soldAt:      soldAt,
	}
}

func (p *AdditionalProduct) ID() uint               { return p.id }
func (p *AdditionalProduct) TicketID() uint         { return p.ticketID }
func (p *AdditionalProduct) Name() string           { return p.name }
func (p *AdditionalProduct) Description() string    { return p.description }
func (p *AdditionalProduct) Price() decimal.Decimal { return p.price }
func (p *AdditionalProduct) Quantity() int          { return p.quantity }
func (p *AdditionalProduct) SoldAt() time.Time      { return p.soldAt }
