package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"klevant/internal/application/ticket/dto"
	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

// AddAdditionalProductCommand records a part sold against a ticket. Allowed
// at any ticket status.
type AddAdditionalProductCommand struct {
	TicketID    uint
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

type AddAdditionalProductUseCase struct {
	ticketRepo  ticket.Repository
	productRepo ticket.AdditionalProductRepository
	logger      logger.Interface
}

func NewAddAdditionalProductUseCase(
	ticketRepo ticket.Repository,
	productRepo ticket.AdditionalProductRepository,
	logger logger.Interface,
) *AddAdditionalProductUseCase {
	return &AddAdditionalProductUseCase{
		ticketRepo:  ticketRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *AddAdditionalProductUseCase) Execute(ctx context.Context, cmd AddAdditionalProductCommand) (*dto.AdditionalProductDTO, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	p, err := ticket.NewAdditionalProduct(t.ID(), cmd.Name, cmd.Description, cmd.Price, cmd.Quantity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to add product to ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to add product to ticket")
	}

	uc.logger.Infow("product added to ticket",
		"ticket_id", t.ID(),
		"product", p.Name(),
		"quantity", p.Quantity(),
	)

	result := dto.FromAdditionalProduct(p)
	return &result, nil
}
