package usecases

import (
	"context"
	"fmt"

	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type RenderQuotationPDFCommand struct {
	TicketID uint
}

type RenderQuotationPDFResult struct {
	FileName string
	Content  []byte
}

type RenderQuotationPDFUseCase struct {
	ticketRepo    ticket.Repository
	quotationRepo ticket.QuotationRepository
	renderer      QuotationRenderer
	logger        logger.Interface
}

func NewRenderQuotationPDFUseCase(
	ticketRepo ticket.Repository,
	quotationRepo ticket.QuotationRepository,
	renderer QuotationRenderer,
	logger logger.Interface,
) *RenderQuotationPDFUseCase {
	return &RenderQuotationPDFUseCase{
		ticketRepo:    ticketRepo,
		quotationRepo: quotationRepo,
		renderer:      renderer,
		logger:        logger,
	}
}

func (uc *RenderQuotationPDFUseCase) Execute(ctx context.Context, cmd RenderQuotationPDFCommand) (*RenderQuotationPDFResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	q, err := uc.quotationRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, errors.NewConflictError("ticket has no quotation to render")
	}

	content, err := uc.renderer.Render(t, q)
	if err != nil {
		uc.logger.Errorw("failed to render quotation pdf", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to render quotation pdf")
	}

	return &RenderQuotationPDFResult{
		FileName: fmt.Sprintf("quotation_ticket_%d.pdf", t.ID()),
		Content:  content,
	}, nil
}
