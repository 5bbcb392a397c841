package ticket

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "klevant/internal/domain/ticket/valueobjects"
)

// Ticket is the aggregate root of the service workflow. It is created by a
// customer submission and mutated only through the workflow operations below.
type Ticket struct {
	id             uint
	customerName   string
	customerMobile string
	customerEmail  string
	address        string
	serviceType    vo.ServiceType
	description    string
	status         vo.Status
	technicianID   *uint
	amountPaid     decimal.Decimal
	notes          string
	dateAttending  *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	customerName string,
	customerMobile string,
	customerEmail string,
	address string,
	serviceType vo.ServiceType,
	description string,
) (*Ticket, error) {
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(customerName) > 100 {
		return nil, fmt.Errorf("customer name exceeds maximum length of 100 characters")
	}
	if len(customerMobile) == 0 {
		return nil, fmt.Errorf("customer mobile is required")
	}
	if len(customerMobile) > 15 {
		return nil, fmt.Errorf("customer mobile exceeds maximum length of 15 characters")
	}
	if len(address) == 0 {
		return nil, fmt.Errorf("address is required")
	}
	if !serviceType.IsValid() {
		return nil, fmt.Errorf("invalid service type")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	now := time.Now()
	return &Ticket{
		customerName:   customerName,
		customerMobile: customerMobile,
		customerEmail:  customerEmail,
		address:        address,
		serviceType:    serviceType,
		description:    description,
		status:         vo.StatusPending,
		amountPaid:     decimal.Zero,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructTicket(
	id uint,
	customerName string,
	customerMobile string,
	customerEmail string,
	address string,
	serviceType vo.ServiceType,
	description string,
	status vo.Status,
	technicianID *uint,
	amountPaid decimal.Decimal,
	notes string,
	dateAttending *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !serviceType.IsValid() {
		return nil, fmt.Errorf("invalid service type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if amountPaid.IsNegative() {
		return nil, fmt.Errorf("amount paid cannot be negative")
	}

	return &Ticket{
		id:             id,
		customerName:   customerName,
		customerMobile: customerMobile,
		customerEmail:  customerEmail,
		address:        address,
		serviceType:    serviceType,
		description:    description,
		status:         status,
		technicianID:   technicianID,
		amountPaid:     amountPaid,
		notes:          notes,
		dateAttending:  dateAttending,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                   { return t.id }
func (t *Ticket) CustomerName() string       { return t.customerName }
func (t *Ticket) CustomerMobile() string     { return t.customerMobile }
func (t *Ticket) CustomerEmail() string      { return t.customerEmail }
func (t *Ticket) Address() string            { return t.address }
func (t *Ticket) ServiceType() vo.ServiceType { return t.serviceType }
func (t *Ticket) Description() string        { return t.description }
func (t *Ticket) Status() vo.Status          { return t.status }
func (t *Ticket) TechnicianID() *uint        { return t.technicianID }
func (t *Ticket) AmountPaid() decimal.Decimal { return t.amountPaid }
func (t *Ticket) Notes() string              { return t.notes }
func (t *Ticket) DateAttending() *time.Time  { return t.dateAttending }
func (t *Ticket) CreatedAt() time.Time       { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time       { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Accept moves a pending ticket to accepted. Only pending tickets can be
// accepted.
func (t *Ticket) Accept() error {
	if !t.status.IsPending() {
		return fmt.Errorf("only pending tickets can be accepted, current status is %s", t.status)
	}
	t.status = vo.StatusAccepted
	t.updatedAt = time.Now()
	return nil
}

// Reject moves a pending ticket to rejected. Only pending tickets can be
// rejected.
func (t *Ticket) Reject() error {
	if !t.status.IsPending() {
		return fmt.Errorf("only pending tickets can be rejected, current status is %s", t.status)
	}
	t.status = vo.StatusRejected
	t.updatedAt = time.Now()
	return nil
}

// AssignTechnician records the technician and moves the ticket to in_progress.
// There is no guard on the prior status: re-assignment at any point re-enters
// in_progress.
func (t *Ticket) AssignTechnician(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	t.technicianID = &technicianID
	t.status = vo.StatusInProgress
	t.updatedAt = time.Now()
	return nil
}

// MarkResolved sets status to resolved. Unconditional.
func (t *Ticket) MarkResolved() {
	t.status = vo.StatusResolved
	t.updatedAt = time.Now()
}

// MarkCompleted sets status to completed. Unconditional.
func (t *Ticket) MarkCompleted() {
	t.status = vo.StatusCompleted
	t.updatedAt = time.Now()
}

// RecordPayment adds a non-negative payment to the amount already paid.
func (t *Ticket) RecordPayment(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("payment amount cannot be negative")
	}
	t.amountPaid = t.amountPaid.Add(amount)
	t.updatedAt = time.Now()
	return nil
}

// UpdateNotes replaces the free-text notes.
func (t *Ticket) UpdateNotes(notes string) {
	t.notes = notes
	t.updatedAt = time.Now()
}

// ScheduleVisit records the planned attendance time.
func (t *Ticket) ScheduleVisit(at time.Time) {
	t.dateAttending = &at
	t.updatedAt = time.Now()
}

// TotalAmount is amount paid plus the quotation total when a quotation
// exists. The quotation total itself is always recomputed from its items.
func (t *Ticket) TotalAmount(q *Quotation) decimal.Decimal {
	total := t.amountPaid
	if q != nil {
		total = total.Add(q.TotalAmount())
	}
	return total
}
