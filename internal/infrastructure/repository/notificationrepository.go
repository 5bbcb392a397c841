package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"klevant/internal/domain/notification"
	"klevant/internal/infrastructure/persistence/mappers"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/db"
	apperrors "klevant/internal/shared/errors"
)

type NotificationRepository struct {
	db     *gorm.DB
	mapper *mappers.NotificationMapper
}

func NewNotificationRepository(database *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		db:     database,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(n)
	if err := conn.Create(model).Error; err != nil {
		return err
	}
	return n.SetID(model.ID)
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	conn := db.GetTxFromContext(ctx, r.db)
	model := r.mapper.ToModel(n)
	result := conn.Model(&models.NotificationModel{}).Where("id = ?", model.ID).Update("read", model.Read)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("notification not found")
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var model models.NotificationModel
	if err := conn.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("notification not found")
		}
		return nil, err
	}
	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, recipientID uint) ([]*notification.Notification, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var notificationModels []models.NotificationModel
	err := conn.
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC, id DESC").
		Find(&notificationModels).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		n, err := r.mapper.ToDomain(&notificationModels[i])
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

func (r *NotificationRepository) CountAll(ctx context.Context) (int64, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	var count int64
	err := conn.Model(&models.NotificationModel{}).Count(&count).Error
	return count, err
}
