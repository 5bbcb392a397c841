// Package mappers converts between persistence models and domain types.
package mappers

import (
	"klevant/internal/domain/ticket"
	vo "klevant/internal/domain/ticket/valueobjects"
	"klevant/internal/infrastructure/persistence/models"
)

type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		CustomerName:   t.CustomerName(),
		CustomerMobile: t.CustomerMobile(),
		CustomerEmail:  t.CustomerEmail(),
		Address:        t.Address(),
		ServiceType:    t.ServiceType().String(),
		Description:    t.Description(),
		Status:         t.Status().String(),
		TechnicianID:   t.TechnicianID(),
		AmountPaid:     t.AmountPaid(),
		Notes:          t.Notes(),
		DateAttending:  t.DateAttending(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func (m *TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.CustomerName,
		model.CustomerMobile,
		model.CustomerEmail,
		model.Address,
		vo.ServiceType(model.ServiceType),
		model.Description,
		vo.Status(model.Status),
		model.TechnicianID,
		model.AmountPaid,
		model.Notes,
		model.DateAttending,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

type QuotationMapper struct{}

func NewQuotationMapper() *QuotationMapper {
	return &QuotationMapper{}
}

func (m *QuotationMapper) ToModel(q *ticket.Quotation) *models.QuotationModel {
	items := q.Items()
	itemModels := make([]models.QuotationItemModel, len(items))
	for i, item := range items {
		itemModels[i] = models.QuotationItemModel{
			ID:          item.ID(),
			QuotationID: q.ID(),
			Description: item.Description(),
			Price:       item.Price(),
			Quantity:    item.Quantity(),
		}
	}
	return &models.QuotationModel{
		ID:                 q.ID(),
		TicketID:           q.TicketID(),
		Notes:              q.Notes(),
		AcceptedByCustomer: q.AcceptedByCustomer(),
		AcceptedAt:         q.AcceptedAt(),
		Items:              itemModels,
		CreatedAt:          q.CreatedAt(),
	}
}

func (m *QuotationMapper) ToDomain(model *models.QuotationModel) (*ticket.Quotation, error) {
	items := make([]ticket.QuotationItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = ticket.ReconstructQuotationItem(item.ID, item.Description, item.Price, item.Quantity)
	}
	return ticket.ReconstructQuotation(
		model.ID,
		model.TicketID,
		model.Notes,
		model.AcceptedByCustomer,
		model.AcceptedAt,
		items,
		model.CreatedAt,
	)
}

type StatusHistoryMapper struct{}

func NewStatusHistoryMapper() *StatusHistoryMapper {
	return &StatusHistoryMapper{}
}

func (m *StatusHistoryMapper) ToModel(h *ticket.StatusHistory) *models.StatusHistoryModel {
	return &models.StatusHistoryModel{
		ID:        h.ID(),
		TicketID:  h.TicketID(),
		Status:    h.Status().String(),
		ChangedBy: h.ChangedBy(),
		Note:      h.Note(),
		ChangedAt: h.ChangedAt(),
	}
}

func (m *StatusHistoryMapper) ToDomain(model *models.StatusHistoryModel) *ticket.StatusHistory {
	return ticket.ReconstructStatusHistory(
		model.ID,
		model.TicketID,
		vo.Status(model.Status),
		model.ChangedBy,
		model.Note,
		model.ChangedAt,
	)
}

type AdditionalProductMapper struct{}

func NewAdditionalProductMapper() *AdditionalProductMapper {
	return &AdditionalProductMapper{}
}

func (m *AdditionalProductMapper) ToModel(p *ticket.AdditionalProduct) *models.AdditionalProductModel {
	return &models.AdditionalProductModel{
		ID:          p.ID(),
		TicketID:    p.TicketID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Quantity:    p.Quantity(),
		SoldAt:      p.SoldAt(),
	}
}

func (m *AdditionalProductMapper) ToDomain(model *models.AdditionalProductModel) *ticket.AdditionalProduct {
	return ticket.ReconstructAdditionalProduct(
		model.ID,
		model.TicketID,
		model.Name,
		model.Description,
		model.Price,
		model.Quantity,
		model.SoldAt,
	)
}
