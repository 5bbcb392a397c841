package usecases

import (
	"context"

	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type MarkResolvedCommand struct {
	TicketID uint
	ActorID  uint
}

// ChangeStatusResult is shared by the unconditional status writes.
type ChangeStatusResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

type MarkResolvedUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.StatusHistoryRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewMarkResolvedUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.StatusHistoryRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *MarkResolvedUseCase {
	return &MarkResolvedUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *MarkResolvedUseCase) Execute(ctx context.Context, cmd MarkResolvedCommand) (*ChangeStatusResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	t.MarkResolved()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		history, err := ticket.NewStatusHistory(t.ID(), t.Status(), cmd.ActorID, "marked as resolved")
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to mark ticket resolved", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to mark ticket resolved")
	}

	uc.logger.Infow("ticket resolved", "ticket_id", t.ID(), "actor_id", cmd.ActorID)

	return &ChangeStatusResult{TicketID: t.ID(), Status: t.Status().String()}, nil
}
