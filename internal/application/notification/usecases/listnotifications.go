package usecases

import (
	"context"
	"time"

	"klevant/internal/domain/notification"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type ListNotificationsQuery struct {
	RecipientID uint
}

type NotificationDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	RelatedTicketID *uint     `json:"related_ticket_id,omitempty"`
	Read            bool      `json:"read"`
	CreatedAt       time.Time `json:"created_at"`
}

type ListNotificationsResult struct {
	Notifications []NotificationDTO `json:"notifications"`
	UnreadCount   int               `json:"unread_count"`
}

type ListNotificationsExecutor interface {
	Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error)
}

type ListNotificationsUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewListNotificationsUseCase(notificationRepo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	notifications, err := uc.notificationRepo.ListByRecipient(ctx, query.RecipientID)
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "recipient_id", query.RecipientID, "error", err)
		return nil, errors.NewInternalError("failed to list notifications")
	}

	dtos := make([]NotificationDTO, len(notifications))
	unread := 0
	for i, n := range notifications {
		dtos[i] = NotificationDTO{
			ID:              n.ID(),
			Title:           n.Title(),
			Message:         n.Message(),
			RelatedTicketID: n.RelatedTicketID(),
			Read:            n.IsRead(),
			CreatedAt:       n.CreatedAt(),
		}
		if !n.IsRead() {
			unread++
		}
	}

	return &ListNotificationsResult{Notifications: dtos, UnreadCount: unread}, nil
}
