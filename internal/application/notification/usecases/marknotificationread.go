package usecases

import (
	"context"

	"klevant/internal/domain/notification"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type MarkNotificationReadCommand struct {
	NotificationID uint
	RecipientID    uint
}

type MarkNotificationReadExecutor interface {
	Execute(ctx context.Context, cmd MarkNotificationReadCommand) error
}

type MarkNotificationReadUseCase struct {
	notificationRepo notification.Repository
	logger           logger.Interface
}

func NewMarkNotificationReadUseCase(notificationRepo notification.Repository, logger logger.Interface) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{notificationRepo: notificationRepo, logger: logger}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, cmd MarkNotificationReadCommand) error {
	n, err := uc.notificationRepo.GetByID(ctx, cmd.NotificationID)
	if err != nil {
		return err
	}

	// Only the recipient may mark their notification as read.
	if n.RecipientID() != cmd.RecipientID {
		return errors.NewForbiddenError("notification belongs to another user")
	}

	n.MarkRead()

	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		uc.logger.Errorw("failed to mark notification read", "notification_id", cmd.NotificationID, "error", err)
		return errors.NewInternalError("failed to mark notification read")
	}

	return nil
}
