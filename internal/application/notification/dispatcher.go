// Package notification wires workflow side effects to their delivery
// channels: an in-app notification row plus a best-effort email.
package notification

import (
	"context"
	"fmt"

	"klevant/internal/domain/notification"
	"klevant/internal/domain/ticket"
	"klevant/internal/domain/user"
	"klevant/internal/shared/logger"
)

// EmailSender delivers workflow emails over SMTP.
type EmailSender interface {
	SendTicketAssigned(to, technicianName string, t *ticket.Ticket) error
}

// Dispatcher creates the in-app notification and sends the email. Either
// channel failing makes the dispatch report an error; the caller treats it
// as a non-fatal annotation.
type Dispatcher struct {
	notificationRepo notification.Repository
	email            EmailSender
	logger           logger.Interface
}

func NewDispatcher(
	notificationRepo notification.Repository,
	email EmailSender,
	logger logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		notificationRepo: notificationRepo,
		email:            email,
		logger:           logger,
	}
}

func (d *Dispatcher) NotifyTicketAssigned(ctx context.Context, technician *user.User, t *ticket.Ticket) error {
	ticketID := t.ID()
	message := fmt.Sprintf(
		"Ticket #%d (%s) for %s has been assigned to you.",
		ticketID, t.ServiceType().Label(), t.CustomerName(),
	)

	n, err := notification.NewNotification(technician.ID(), "New ticket assigned", message, &ticketID)
	if err != nil {
		return err
	}
	if err := d.notificationRepo.Save(ctx, n); err != nil {
		return fmt.Errorf("save notification: %w", err)
	}

	if err := d.email.SendTicketAssigned(technician.Email(), technician.Name(), t); err != nil {
		return fmt.Errorf("send assignment email: %w", err)
	}

	d.logger.Debugw("assignment notification dispatched",
		"ticket_id", ticketID,
		"technician_id", technician.ID(),
	)
	return nil
}
