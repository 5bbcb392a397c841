package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"klevant/internal/domain/inventory"
	"klevant/internal/infrastructure/persistence/mappers"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/db"
	apperrors "klevant/internal/shared/errors"
)

type OutwardAssignmentRepository struct {
	db     *gorm.DB
	mapper *mappers.OutwardAssignmentMapper
}

func NewOutwardAssignmentRepository(database *gorm.DB) *OutwardAssignmentRepository {
	return &OutwardAssignmentRepository{
		db:     database,
		mapper: mappers.NewOutwardAssignmentMapper(),
	}
}

func (r *OutwardAssignmentRepository) Save(ctx context.Context, a *inventory.OutwardAssignment) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(a)
	if err := conn.Create(model).Error; err != nil {
		return err
	}
	return a.SetID(model.ID)
}

func (r *OutwardAssignmentRepository) Update(ctx context.Context, a *inventory.OutwardAssignment) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(a)
	result := conn.Model(&models.OutwardAssignmentModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"quantity_returned": model.QuantityReturned,
		"status":            model.Status,
		"returned_at":       model.ReturnedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("assignment not found")
	}
	return nil
}

func (r *OutwardAssignmentRepository) GetByID(ctx context.Context, id uint) (*inventory.OutwardAssignment, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.OutwardAssignmentModel
	if err := conn.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("assignment not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *OutwardAssignmentRepository) List(ctx context.Context) ([]*inventory.OutwardAssignment, error) {
	return r.list(ctx, nil)
}

func (r *OutwardAssignmentRepository) ListByTechnician(ctx context.Context, technicianID uint) ([]*inventory.OutwardAssignment, error) {
	return r.list(ctx, &technicianID)
}

func (r *OutwardAssignmentRepository) list(ctx context.Context, technicianID *uint) ([]*inventory.OutwardAssignment, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	query := conn.Model(&models.OutwardAssignmentModel{})
	if technicianID != nil {
		query = query.Where("technician_id = ?", *technicianID)
	}

	var assignmentModels []models.OutwardAssignmentModel
	if err := query.Order("assigned_at DESC").Find(&assignmentModels).Error; err != nil {
		return nil, err
	}

	assignments := make([]*inventory.OutwardAssignment, 0, len(assignmentModels))
	for i := range assignmentModels {
		a, err := r.mapper.ToDomain(&assignmentModels[i])
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
