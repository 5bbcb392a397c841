package repository

import (
	"context"

	"gorm.io/gorm"

	"klevant/internal/domain/ticket"
	"klevant/internal/infrastructure/persistence/mappers"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/db"
)

type StatusHistoryRepository struct {
	db     *gorm.DB
	mapper *mappers.StatusHistoryMapper
}

func NewStatusHistoryRepository(database *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{
		db:     database,
		mapper: mappers.NewStatusHistoryMapper(),
	}
}

func (r *StatusHistoryRepository) Append(ctx context.Context, h *ticket.StatusHistory) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(h)
	return conn.Create(model).Error
}

func (r *StatusHistoryRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.StatusHistory, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var historyModels []models.StatusHistoryModel
	err := conn.
		Where("ticket_id = ?", ticketID).
		Order("changed_at DESC, id DESC").
		Find(&historyModels).Error
	if err != nil {
		return nil, err
	}

	history := make([]*ticket.StatusHistory, len(historyModels))
	for i := range historyModels {
		history[i] = r.mapper.ToDomain(&historyModels[i])
	}
	return history, nil
}
