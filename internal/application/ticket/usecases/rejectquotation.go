package usecases

import (
	"context"

	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type RejectQuotationCommand struct {
	TicketID uint
}

type RejectQuotationUseCase struct {
	quotationRepo ticket.QuotationRepository
	logger        logger.Interface
}

func NewRejectQuotationUseCase(quotationRepo ticket.QuotationRepository, logger logger.Interface) *RejectQuotationUseCase {
	return &RejectQuotationUseCase{quotationRepo: quotationRepo, logger: logger}
}

func (uc *RejectQuotationUseCase) Execute(ctx context.Context, cmd RejectQuotationCommand) error {
	q, err := uc.quotationRepo.GetByTicketID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if q == nil {
		return errors.NewNotFoundError("quotation not found")
	}

	q.RejectByCustomer()

	if err := uc.quotationRepo.Update(ctx, q); err != nil {
		uc.logger.Errorw("failed to reject quotation", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to reject quotation")
	}

	uc.logger.Infow("quotation rejected by customer", "ticket_id", cmd.TicketID, "quotation_id", q.ID())
	return nil
}
