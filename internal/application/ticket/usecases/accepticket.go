package usecases

import (
	"context"

	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type AcceptTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type AcceptTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

type AcceptTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.StatusHistoryRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewAcceptTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.StatusHistoryRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *AcceptTicketUseCase {
	return &AcceptTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *AcceptTicketUseCase) Execute(ctx context.Context, cmd AcceptTicketCommand) (*AcceptTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.Accept(); err != nil {
		return nil, errors.NewInvalidTransitionError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		history, err := ticket.NewStatusHistory(t.ID(), t.Status(), cmd.ActorID, "accepted by admin")
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to accept ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to accept ticket")
	}

	uc.logger.Infow("ticket accepted", "ticket_id", t.ID(), "actor_id", cmd.ActorID)

	return &AcceptTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}
