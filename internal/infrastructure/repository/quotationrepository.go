package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"klevant/internal/domain/ticket"
	"klevant/internal/infrastructure/persistence/mappers"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/db"
	apperrors "klevant/internal/shared/errors"
)

type QuotationRepository struct {
	db     *gorm.DB
	mapper *mappers.QuotationMapper
}

func NewQuotationRepository(database *gorm.DB) *QuotationRepository {
	return &QuotationRepository{
		db:     database,
		mapper: mappers.NewQuotationMapper(),
	}
}

// Save writes the quotation and its items in one transaction; the unique
// index on ticket_id backs the one-quotation-per-ticket rule.
func (r *QuotationRepository) Save(ctx context.Context, q *ticket.Quotation) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(q)
	if err := conn.Create(model).Error; err != nil {
		return err
	}
	return q.SetID(model.ID)
}

func (r *QuotationRepository) Update(ctx context.Context, q *ticket.Quotation) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(q)
	result := conn.Model(&models.QuotationModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"notes":                model.Notes,
		"accepted_by_customer": model.AcceptedByCustomer,
		"accepted_at":          model.AcceptedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("quotation not found")
	}
	return nil
}

func (r *QuotationRepository) GetByID(ctx context.Context, id uint) (*ticket.Quotation, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.QuotationModel
	if err := conn.Preload("Items").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("quotation not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

// GetByTicketID returns nil, nil when the ticket has no quotation.
func (r *QuotationRepository) GetByTicketID(ctx context.Context, ticketID uint) (*ticket.Quotation, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.QuotationModel
	err := conn.Preload("Items").Where("ticket_id = ?", ticketID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}
