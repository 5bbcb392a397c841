package mappers

import (
	"klevant/internal/domain/notification"
	"klevant/internal/infrastructure/persistence/models"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:              n.ID(),
		RecipientID:     n.RecipientID(),
		Title:           n.Title(),
		Message:         n.Message(),
		RelatedTicketID: n.RelatedTicketID(),
		Read:            n.IsRead(),
		CreatedAt:       n.CreatedAt(),
	}
}

func (m *NotificationMapper) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	return notification.ReconstructNotification(
		model.ID,
		model.RecipientID,
		model.Title,
		model.Message,
		model.RelatedTicketID,
		model.Read,
		model.CreatedAt,
	)
}
