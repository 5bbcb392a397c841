// Package dto defines the read models returned by ticket use cases.
package dto

import (
	"time"

	"klevant/internal/domain/ticket"
)

type QuotationItemDTO struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
	LineTotal   string `json:"line_total"`
}

type QuotationDTO struct {
	ID                 uint               `json:"id"`
	TicketID           uint               `json:"ticket_id"`
	Notes              string             `json:"notes,omitempty"`
	AcceptedByCustomer bool               `json:"accepted_by_customer"`
	AcceptedAt         *time.Time         `json:"accepted_at,omitempty"`
	Items              []QuotationItemDTO `json:"items"`
	TotalAmount        string             `json:"total_amount"`
	CreatedAt          time.Time          `json:"created_at"`
}

type AdditionalProductDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticket_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Quantity    int       `json:"quantity"`
	SoldAt      time.Time `json:"sold_at"`
}

type StatusHistoryDTO struct {
	ID        uint      `json:"id"`
	Status    string    `json:"status"`
	ChangedBy *uint     `json:"changed_by,omitempty"`
	Note      string    `json:"note,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

type TicketDTO struct {
	ID             uint                   `json:"id"`
	CustomerName   string                 `json:"customer_name"`
	CustomerMobile string                 `json:"customer_mobile"`
	CustomerEmail  string                 `json:"customer_email,omitempty"`
	Address        string                 `json:"address"`
	ServiceType    string                 `json:"service_type"`
	Description    string                 `json:"description"`
	Status         string                 `json:"status"`
	TechnicianID   *uint                  `json:"technician_id,omitempty"`
	AmountPaid     string                 `json:"amount_paid"`
	TotalAmount    string                 `json:"total_amount"`
	Notes          string                 `json:"notes,omitempty"`
	DateAttending  *time.Time             `json:"date_attending,omitempty"`
	Quotation      *QuotationDTO          `json:"quotation,omitempty"`
	Products       []AdditionalProductDTO `json:"additional_products,omitempty"`
	History        []StatusHistoryDTO     `json:"status_history,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// TicketListItemDTO is the compact shape used by list endpoints.
type TicketListItemDTO struct {
	ID           uint      `json:"id"`
	CustomerName string    `json:"customer_name"`
	ServiceType  string    `json:"service_type"`
	Status       string    `json:"status"`
	TechnicianID *uint     `json:"technician_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromQuotation(q *ticket.Quotation) *QuotationDTO {
	if q == nil {
		return nil
	}
	items := q.Items()
	itemDTOs := make([]QuotationItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = QuotationItemDTO{
			ID:          item.ID(),
			Description: item.Description(),
			Price:       item.Price().StringFixed(2),
			Quantity:    item.Quantity(),
			LineTotal:   item.LineTotal().StringFixed(2),
		}
	}
	return &QuotationDTO{
		ID:                 q.ID(),
		TicketID:           q.TicketID(),
		Notes:              q.Notes(),
		AcceptedByCustomer: q.AcceptedByCustomer(),
		AcceptedAt:         q.AcceptedAt(),
		Items:              itemDTOs,
		TotalAmount:        q.TotalAmount().StringFixed(2),
		CreatedAt:          q.CreatedAt(),
	}
}

func FromAdditionalProduct(p *ticket.AdditionalProduct) AdditionalProductDTO {
	return AdditionalProductDTO{
		ID:          p.ID(),
		TicketID:    p.TicketID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().StringFixed(2),
		Quantity:    p.Quantity(),
		SoldAt:      p.SoldAt(),
	}
}

func FromStatusHistory(h *ticket.StatusHistory) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:        h.ID(),
		Status:    h.Status().String(),
		ChangedBy: h.ChangedBy(),
		Note:      h.Note(),
		ChangedAt: h.ChangedAt(),
	}
}

// FromTicket assembles the full read model. The quotation total and the
// ticket total are recomputed here, never read from storage.
func FromTicket(
	t *ticket.Ticket,
	q *ticket.Quotation,
	products []*ticket.AdditionalProduct,
	history []*ticket.StatusHistory,
) *TicketDTO {
	productDTOs := make([]AdditionalProductDTO, len(products))
	for i, p := range products {
		productDTOs[i] = FromAdditionalProduct(p)
	}
	historyDTOs := make([]StatusHistoryDTO, len(history))
	for i, h := range history {
		historyDTOs[i] = FromStatusHistory(h)
	}
	return &TicketDTO{
		ID:             t.ID(),
		CustomerName:   t.CustomerName(),
		CustomerMobile: t.CustomerMobile(),
		CustomerEmail:  t.CustomerEmail(),
		Address:        t.Address(),
		ServiceType:    t.ServiceType().String(),
		Description:    t.Description(),
		Status:         t.Status().String(),
		TechnicianID:   t.TechnicianID(),
		AmountPaid:     t.AmountPaid().StringFixed(2),
		TotalAmount:    t.TotalAmount(q).StringFixed(2),
		Notes:          t.Notes(),
		DateAttending:  t.DateAttending(),
		Quotation:      FromQuotation(q),
		Products:       productDTOs,
		History:        historyDTOs,
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func FromTicketListItem(t *ticket.Ticket) TicketListItemDTO {
	return TicketListItemDTO{
		ID:           t.ID(),
		CustomerName: t.CustomerName(),
		ServiceType:  t.ServiceType().String(),
		Status:       t.Status().String(),
		TechnicianID: t.TechnicianID(),
		CreatedAt:    t.CreatedAt(),
	}
}
