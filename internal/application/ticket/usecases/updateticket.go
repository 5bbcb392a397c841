package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"klevant/internal/domain/ticket"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

// UpdateTicketCommand carries the mutable bookkeeping fields. Nil pointers
// leave the field untouched; Payment is added to the amount already paid.
type UpdateTicketCommand struct {
	TicketID      uint
	Notes         *string
	Payment       *decimal.Decimal
	DateAttending *time.Time
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) error
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if cmd.Notes != nil {
		t.UpdateNotes(*cmd.Notes)
	}
	if cmd.Payment != nil {
		if err := t.RecordPayment(*cmd.Payment); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if cmd.DateAttending != nil {
		t.ScheduleVisit(*cmd.DateAttending)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to update ticket")
	}

	return nil
}
