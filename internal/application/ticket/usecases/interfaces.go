package usecases

import (
	"context"

	"klevant/internal/application/ticket/dto"
	"klevant/internal/domain/ticket"
	"klevant/internal/domain/user"
)

// TransactionManager runs a function inside a storage transaction. Every
// status-changing use case persists the ticket mutation and its history row
// as one atomic unit through this interface.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AssigneeNotifier delivers the "ticket assigned" notification to a
// technician. Delivery is best-effort: failures are reported to the caller
// as a non-fatal annotation and never roll back the assignment.
type AssigneeNotifier interface {
	NotifyTicketAssigned(ctx context.Context, technician *user.User, t *ticket.Ticket) error
}

// QuotationRenderer turns a ticket and its quotation into a PDF document.
type QuotationRenderer interface {
	Render(t *ticket.Ticket, q *ticket.Quotation) ([]byte, error)
}

type SubmitTicketExecutor interface {
	Execute(ctx context.Context, cmd SubmitTicketCommand) (*SubmitTicketResult, error)
}

type AcceptTicketExecutor interface {
	Execute(ctx context.Context, cmd AcceptTicketCommand) (*AcceptTicketResult, error)
}

type RejectTicketExecutor interface {
	Execute(ctx context.Context, cmd RejectTicketCommand) (*RejectTicketResult, error)
}

type AssignTechnicianExecutor interface {
	Execute(ctx context.Context, cmd AssignTechnicianCommand) (*AssignTechnicianResult, error)
}

type CreateQuotationExecutor interface {
	Execute(ctx context.Context, cmd CreateQuotationCommand) (*dto.QuotationDTO, error)
}

type AcceptQuotationExecutor interface {
	Execute(ctx context.Context, cmd AcceptQuotationCommand) error
}

type RejectQuotationExecutor interface {
	Execute(ctx context.Context, cmd RejectQuotationCommand) error
}

type AddAdditionalProductExecutor interface {
	Execute(ctx context.Context, cmd AddAdditionalProductCommand) (*dto.AdditionalProductDTO, error)
}

type MarkResolvedExecutor interface {
	Execute(ctx context.Context, cmd MarkResolvedCommand) (*ChangeStatusResult, error)
}

type MarkCompletedExecutor interface {
	Execute(ctx context.Context, cmd MarkCompletedCommand) (*ChangeStatusResult, error)
}

type RenderQuotationPDFExecutor interface {
	Execute(ctx context.Context, cmd RenderQuotationPDFCommand) (*RenderQuotationPDFResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}
