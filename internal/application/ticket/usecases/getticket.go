package usecases

import (
	"context"

	"klevant/internal/application/ticket/dto"
	"klevant/internal/domain/ticket"
	"klevant/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

// GetTicketUseCase assembles the full ticket read model: the ticket, its
// quotation (if any), additional products and status history.
type GetTicketUseCase struct {
	ticketRepo    ticket.Repository
	quotationRepo ticket.QuotationRepository
	productRepo   ticket.AdditionalProductRepository
	historyRepo   ticket.StatusHistoryRepository
	logger        logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	quotationRepo ticket.QuotationRepository,
	productRepo ticket.AdditionalProductRepository,
	historyRepo ticket.StatusHistoryRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:    ticketRepo,
		quotationRepo: quotationRepo,
		productRepo:   productRepo,
		historyRepo:   historyRepo,
		logger:        logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	q, err := uc.quotationRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	history, err := uc.historyRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	return dto.FromTicket(t, q, products, history), nil
}
