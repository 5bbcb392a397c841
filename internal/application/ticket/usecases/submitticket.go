package usecases

import (
	"context"

	"klevant/internal/domain/ticket"
	vo "klevant/internal/domain/ticket/valueobjects"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

// SubmitTicketCommand carries a customer service request. This is the only
// write operation exposed without authentication.
type SubmitTicketCommand struct {
	CustomerName   string
	CustomerMobile string
	CustomerEmail  string
	Address        string
	ServiceType    string
	Description    string
}

type SubmitTicketResult struct {
	TicketID uint   `json:"ticket_id"`
	Status   string `json:"status"`
}

type SubmitTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo ticket.StatusHistoryRepository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewSubmitTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo ticket.StatusHistoryRepository,
	txManager TransactionManager,
	logger logger.Interface,
) *SubmitTicketUseCase {
	return &SubmitTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *SubmitTicketUseCase) Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error) {
	serviceType, err := vo.NewServiceType(cmd.ServiceType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := ticket.NewTicket(
		cmd.CustomerName,
		cmd.CustomerMobile,
		cmd.CustomerEmail,
		cmd.Address,
		serviceType,
		cmd.Description,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return err
		}
		history, err := ticket.NewStatusHistory(t.ID(), t.Status(), 0, "ticket submitted")
		if err != nil {
			return err
		}
		return uc.historyRepo.Append(txCtx, history)
	})
	if err != nil {
		uc.logger.Errorw("failed to submit ticket", "error", err)
		return nil, errors.NewInternalError("failed to submit ticket")
	}

	uc.logger.Infow("ticket submitted",
		"ticket_id", t.ID(),
		"service_type", t.ServiceType().String(),
	)

	return &SubmitTicketResult{
		TicketID: t.ID(),
		Status:   t.Status().String(),
	}, nil
}
