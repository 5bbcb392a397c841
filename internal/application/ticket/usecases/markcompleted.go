package usecases

import (
	"context"

	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type MarkCompletedCommand struct {
	TicketID uint
	ActorID  uint
}

type MarkCompletedUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.StatusHistoryRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewMarkCompletedUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.StatusHistoryRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *MarkCompletedUseCase {
	return &MarkCompletedUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *MarkCompletedUseCase) Execute(ctx context.Context, cmd MarkCompletedCommand) (*ChangeStatusResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	t.MarkCompleted()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		history, err := ticket.NewStatusHistory(t.ID(), t.Status(), cmd.ActorID, "marked as completed")
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to mark ticket completed", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to mark ticket completed")
	}

	uc.logger.Infow("ticket completed", "ticket_id", t.ID(), "actor_id", cmd.ActorID)

	return &ChangeStatusResult{TicketID: t.ID(), Status: t.Status().String()}, nil
}
