package usecases

import (
	"context"

	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type RejectTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type RejectTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

type RejectTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.StatusHistoryRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewRejectTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.StatusHistoryRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *RejectTicketUseCase {
	return &RejectTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *RejectTicketUseCase) Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.Reject(); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		history, err := ticket.NewStatusHistory(t.ID(), t.Status(), cmd.ActorID, "rejected by admin")
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to reject ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to reject ticket")
	}

	uc.logger.Infow("ticket rejected", "ticket_id", t.ID(), "actor_id", cmd.ActorID)

	return &RejectTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}
