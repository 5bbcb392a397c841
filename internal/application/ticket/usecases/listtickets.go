package usecases

import (
	"context"

	"klevant/internal/application/ticket/dto"
	"klevant/internal/domain/ticket"
	vo "klevant/internal/domain/ticket/valueobjects"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type ListTicketsQuery struct {
	Status       string
	TechnicianID *uint
	Search       string
	Page         int
	PageSize     int
}

type ListTicketsResult struct {
	Tickets  []dto.TicketListItemDTO `json:"tickets"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		TechnicianID: query.TechnicianID,
		Search:       query.Search,
		Page:         query.Page,
		PageSize:     query.PageSize,
	}

	if query.Status != "" {
		status, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	items := make([]dto.TicketListItemDTO, len(tickets))
	for i, t := range tickets {
		items[i] = dto.FromTicketListItem(t)
	}

	return &ListTicketsResult{
		Tickets:  items,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
