// Package email sends workflow emails over SMTP via gomail.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"klevant/internal/domain/ticket"
	sharedconfig "klevant/internal/shared/config"
	"klevant/internal/shared/logger"
)

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Interface
}

func NewSMTPSender(cfg *sharedconfig.EmailConfig, logger logger.Interface) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	from := cfg.FromAddress
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress)
	}
	return &SMTPSender{dialer: dialer, from: from, logger: logger}
}

// SendTicketAssigned notifies a technician that a ticket now belongs to them.
func (s *SMTPSender) SendTicketAssigned(to, technicianName string, t *ticket.Ticket) error {
	subject := fmt.Sprintf("Ticket #%d assigned to you", t.ID())
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Ticket #%d has been assigned to you.\n\n"+
			"Service: %s\n"+
			"Customer: %s (%s)\n"+
			"Address: %s\n\n"+
			"Description:\n%s\n",
		technicianName,
		t.ID(),
		t.ServiceType().Label(),
		t.CustomerName(), t.CustomerMobile(),
		t.Address(),
		t.Description(),
	)
	return s.send(to, subject, body)
}

// SendTechnicianCredentials emails login details for a freshly created
// technician account.
func (s *SMTPSender) SendTechnicianCredentials(to, name, password string) error {
	subject := "Your Klevant technician account"
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"A technician account has been created for you.\n\n"+
			"Email: %s\n"+
			"Password: %s\n\n"+
			"Please sign in and change your password.\n",
		name, to, password,
	)
	return s.send(to, subject, body)
}

func (s *SMTPSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	s.logger.Debugw("email sent", "to", to, "subject", subject)
	return nil
}
