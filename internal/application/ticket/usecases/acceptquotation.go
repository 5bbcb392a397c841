package usecases

import (
	"context"

	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type AcceptQuotationCommand struct {
	TicketID uint
}

// AcceptQuotationUseCase records customer acceptance of a quotation. The
// ticket status is untouched.
type AcceptQuotationUseCase struct {
	quotationRepo ticket.QuotationRepository
	logger        logger.Interface
}

func NewAcceptQuotationUseCase(quotationRepo ticket.QuotationRepository, logger logger.Interface) *AcceptQuotationUseCase {
	return &AcceptQuotationUseCase{quotationRepo: quotationRepo, logger: logger}
}

func (uc *AcceptQuotationUseCase) Execute(ctx context.Context, cmd AcceptQuotationCommand) error {
	q, err := uc.quotationRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if q == nil {
		return errors.NewNotFoundError("quotation not found")
	}

	q.AcceptByCustomer()

	if err := uc.quotationRepo.Update(ctx, q); err != nil {
		uc.logger.Errorw("failed to accept quotation", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to accept quotation")
	}

	uc.logger.Infow("quotation accepted by customer", "ticket_id", cmd.TicketID, "quotation_id", q.ID())
	return nil
}
