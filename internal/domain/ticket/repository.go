package ticket

import (
	"context"

	vo "klevant/internal/domain/ticket/valueobjects"
)

// Filter narrows ticket listings. Search matches customer name, service
// type, description and the numeric ID.
type Filter struct {
	Status       *vo.Status
	TechnicianID *uint
	Search       string
	Page         int
	PageSize     int
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
}

type QuotationRepository interface {
	// Save persists the quotation together with its items.
	Save(ctx context.Context, q *Quotation) error
	Update(ctx context.Context, q *Quotation) error
	GetByID(ctx context.Context, id uint) (*Quotation, error)
	// GetByTicketID returns nil, nil when the ticket has no quotation.
	GetByTicketID(ctx context.Context, ticketID uint) (*Quotation, error)
}

type StatusHistoryRepository interface {
	Append(ctx context.Context, h *StatusHistory) error
	// ListByTicketID returns history rows newest first.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*StatusHistory, error)
}

type AdditionalProductRepository interface {
	Save(ctx context.Context, p *AdditionalProduct) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*AdditionalProduct, error)
}
