package usecases

import (
	"context"
	"fmt"

	"klevant/internal/domain/ticket"
	"klevant/internal/domain/user"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type AssignTechnicianCommand struct {
	TicketID     uint
	TechnicianID uint
	ActorID      uint
}

// AssignTechnicianResult reports the assignment outcome. NotificationSent is
// false with NotificationError set when the technician could not be notified;
// the assignment itself still succeeded.
type AssignTechnicianResult struct {
	TicketID          uint   `json:"ticket_id"`
	TechnicianID      uint   `json:"technician_id"`
	Status            string `json:"status"`
	NotificationSent  bool   `json:"notification_sent"`
	NotificationError string `json:"notification_error,omitempty"`
}

type AssignTechnicianUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.StatusHistoryRepository
	userRepo    user.Repository
	txManager   TransactionManager
	notifier    AssigneeNotifier
	logger      logger.Interface
}

func NewAssignTechnicianUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.StatusHistoryRepository,
	userRepo user.Repository,
	txManager TransactionManager,
	notifier AssigneeNotifier,
	logger logger.Interface,
) *AssignTechnicianUseCase {
	return &AssignTechnicianUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *AssignTechnicianUseCase) Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignTechnicianResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	technician, err := uc.userRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, err
	}
	if !technician.IsTechnician() {
		return nil, errors.NewNotFoundError("technician not found")
	}

	if err := t.AssignTechnician(technician.ID()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		note := fmt.Sprintf("assigned to %s", technician.Name())
		history, err := ticket.NewStatusHistory(t.ID(), t.Status(), cmd.ActorID, note)
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to assign technician",
			"ticket_id", cmd.TicketID,
			"technician_id", cmd.TechnicianID,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to assign technician")
	}

	result := &AssignTechnicianResult{
		TicketID:         t.ID(),
		TechnicianID:     technician.ID(),
		Status:           t.Status().String(),
		NotificationSent: true,
	}

	// Notification is best-effort; a delivery failure never unwinds the
	// assignment.
	if err := uc.notifier.NotifyTicketAssigned(ctx, technician, t); err != nil {
		uc.logger.Warnw("failed to notify technician of assignment",
			"ticket_id", t.ID(),
			"technician_id", technician.ID(),
			"error", err,
		)
		result.NotificationSent = false
		result.NotificationError = err.Error()
	}

	uc.logger.Infow("technician assigned",
		"ticket_id", t.ID(),
		"technician_id", technician.ID(),
		"actor_id", cmd.ActorID,
	)

	return result, nil
}
