package repository

import (
	"context"

	"gorm.io/gorm"

	"klevant/internal/domain/ticket"
	"klevant/internal/infrastructure/persistence/mappers"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/db"
)

type AdditionalProductRepository struct {
	db     *gorm.DB
	mapper *mappers.AdditionalProductMapper
}

func NewAdditionalProductRepository(database *gorm.DB) *AdditionalProductRepository {
	return &AdditionalProductRepository{
		db:     database,
		mapper: mappers.NewAdditionalProductMapper(),
	}
}

func (r *AdditionalProductRepository) Save(ctx context.Context, p *ticket.AdditionalProduct) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(p)
	if err := conn.Create(model).Error; err != nil {
		return err
	}
	return nil
}

func (r *AdditionalProductRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.AdditionalProduct, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var productModels []models.AdditionalProductModel
	err := conn.
		Where("ticket_id = ?", ticketID).
		Order("sold_at ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, err
	}

	products := make([]*ticket.AdditionalProduct, len(productModels))
	for i := range productModels {
		products[i] = r.mapper.ToDomain(&productModels[i])
	}
	return products, nil
}
