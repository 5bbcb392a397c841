package ticket

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// QuotationItem is a single line on a quotation. Items are added at creation
// only; no update or delete operation exists on individual items.
type QuotationItem struct {
	id          uint
	description string
	price       decimal.Decimal
	quantity    int
}

func NewQuotationItem(description string, price decimal.Decimal, quantity int) (QuotationItem, error) {
	if len(description) == 0 {
		return QuotationItem{}, fmt.Errorf("item description is required")
	}
	if len(description) > 200 {
		return QuotationItem{}, fmt.Errorf("item description exceeds maximum length of 200 characters")
	}
	if price.IsNegative() {
		return QuotationItem{}, fmt.Errorf("item price cannot be negative")
	}
	if quantity < 1 {
		return QuotationItem{}, fmt.Errorf("item quantity must be at least 1")
	}
	return QuotationItem{
		description: description,
		price:       price,
		quantity:    quantity,
	}, nil
}

func ReconstructQuotationItem(id uint, description string, price decimal.Decimal, quantity int) QuotationItem {
	return QuotationItem{
		id:          id,
		description: description,
		price:       price,
		quantity:    quantity,
	}
}

func (i QuotationItem) ID() uint               { return i.id }
func (i QuotationItem) Description() string    { return i.description }
func (i QuotationItem) Price() decimal.Decimal { return i.price }
func (i QuotationItem) Quantity() int          { return i.quantity }

// LineTotal is price times quantity.
func (i QuotationItem) LineTotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// Quotation belongs to exactly one ticket. It is immutable after creation
// except for the customer acceptance fields.
type Quotation struct {
	id                 uint
	ticketID           uint
	notes              string
	acceptedByCustomer bool
	acceptedAt         *time.Time
	items              []QuotationItem
	createdAt          time.Time
}

func NewQuotation(ticketID uint, notes string, items []QuotationItem) (*Quotation, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("quotation requires at least one item")
	}
	return &Quotation{
		ticketID:  ticketID,
		notes:     notes,
		items:     items,
		createdAt: time.Now(),
	}, nil
}

func ReconstructQuotation(
	id uint,
	ticketID uint,
	notes string,
	acceptedByCustomer bool,
	acceptedAt *time.Time,
	items []QuotationItem,
	createdAt time.Time,
) (*Quotation, error) {
	if id == 0 {
		return nil, fmt.Errorf("quotation ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	return &Quotation{
		id:                 id,
		ticketID:           ticketID,
		notes:              notes,
		acceptedByCustomer: acceptedByCustomer,
		acceptedAt:         acceptedAt,
		items:              items,
		createdAt:          createdAt,
	}, nil
}

func (q *Quotation) ID() uint                 { return q.id }
func (q *Quotation) TicketID() uint           { return q.ticketID }
func (q *Quotation) Notes() string            { return q.notes }
func (q *Quotation) AcceptedByCustomer() bool { return q.acceptedByCustomer }
func (q *Quotation) AcceptedAt() *time.Time   { return q.acceptedAt }
func (q *Quotation) CreatedAt() time.Time     { return q.createdAt }

func (q *Quotation) Items() []QuotationItem {
	itemsCopy := make([]QuotationItem, len(q.items))
	copy(itemsCopy, q.items)
	return itemsCopy
}

func (q *Quotation) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("quotation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("quotation ID cannot be zero")
	}
	q.id = id
	return nil
}

// AcceptByCustomer marks the quotation accepted and stamps the acceptance
// time. Accepting a quotation does not advance the ticket status.
func (q *Quotation) AcceptByCustomer() {
	q.acceptedByCustomer = true
	now := time.Now()
	q.acceptedAt = &now
}

// RejectByCustomer clears the accepted flag.
func (q *Quotation) RejectByCustomer() {
	q.acceptedByCustomer = false
}

// TotalAmount is the sum of price times quantity over all items. It is
// recomputed on every call and never persisted, so it cannot drift from
// the item rows.
func (q *Quotation) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range q.items {
		total = total.Add(item.LineTotal())
	}
	return total
}
