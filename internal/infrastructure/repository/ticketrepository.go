// Package repository implements the domain repository interfaces on gorm.
package repository

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"klevant/internal/domain/ticket"
	"klevant/internal/infrastructure/persistence/mappers"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/constants"
	"klevant/internal/shared/db"
	apperrors "klevant/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper *mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(t)
	if err := conn.Create(model).Error; err != nil {
		return err
	}
	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(t)
	result := conn.Model(&models.TicketModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"customer_name":   model.CustomerName,
		"customer_mobile": model.CustomerMobile,
		"customer_email":  model.CustomerEmail,
		"address":         model.Address,
		"service_type":    model.ServiceType,
		"description":     model.Description,
		"status":          model.Status,
		"technician_id":   model.TechnicianID,
		"amount_paid":     model.AmountPaid,
		"notes":           model.Notes,
		"date_attending":  model.DateAttending,
		"updated_at":      model.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.TicketModel
	if err := conn.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)

	query := conn.Model(&models.TicketModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		if id, err := strconv.ParseUint(filter.Search, 10, 64); err == nil {
			query = query.Where(
				"id = ? OR customer_name LIKE ? OR service_type LIKE ? OR description LIKE ?",
				id, pattern, pattern, pattern,
			)
		} else {
			query = query.Where(
				"customer_name LIKE ? OR service_type LIKE ? OR description LIKE ?",
				pattern, pattern, pattern,
			)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	var ticketModels []models.TicketModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&ticketModels).Error
	if err != nil {
		return nil, 0, err
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}
