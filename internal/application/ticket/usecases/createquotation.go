package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"klevant/internal/application/ticket/dto"
	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type QuotationItemInput struct {
	Description string
	Price       decimal.Decimal
	Quantity    int
}

type CreateQuotationCommand struct {
	TicketID uint
	Notes    string
	Items    []QuotationItemInput
}

type CreateQuotationUseCase struct {
	ticketRepo    ticket.Repository
	quotationRepo ticket.QuotationRepository
	logger        logger.Interface
}

func NewCreateQuotationUseCase(
	ticketRepo ticket.Repository,
	quotationRepo ticket.QuotationRepository,
	logger logger.Interface,
) *CreateQuotationUseCase {
	return &CreateQuotationUseCase{
		ticketRepo:    ticketRepo,
		quotationRepo: quotationRepo,
		logger:        logger,
	}
}

func (uc *CreateQuotationUseCase) Execute(ctx context.Context, cmd CreateQuotationCommand) (*dto.QuotationDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.quotationRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("ticket already has a quotation")
	}

	items := make([]ticket.QuotationItem, 0, len(cmd.Items))
	for _, input := range cmd.Items {
		item, err := ticket.NewQuotationItem(input.Description, input.Price, input.Quantity)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		items = append(items, item)
	}

	q, err := ticket.NewQuotation(t.ID(), cmd.Notes, items)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.quotationRepo.Save(ctx, q); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("ticket already has a quotation")
		}
		uc.logger.Errorw("failed to create quotation", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to create quotation")
	}

	uc.logger.Infow("quotation created",
		"ticket_id", t.ID(),
		"quotation_id", q.ID(),
		"total", q.TotalAmount().StringFixed(2),
	)

	return dto.FromQuotation(q), nil
}
