package ticket

import (
	"fmt"
	"time"

	vo "klevant/internal/domain/ticket/valueobjects"
)

// StatusHistory is an append-only audit record of a status transition.
// Rows are never edited or deleted once written.
type StatusHistory struct {
	id        uint
	ticketID  uint
	status    vo.Status
	changedBy *uint
	note      string
	changedAt time.Time
}

func NewStatusHistory(ticketID uint, status vo.Status, changedBy uint, note string) (*StatusHistory, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	var actor *uint
	if changedBy != 0 {
		actor = &changedBy
	}
	return &StatusHistory{
		ticketID:  ticketID,
		status:    status,
		changedBy: actor,
		note:      note,
		changedAt: time.Now(),
	}, nil
}

func ReconstructStatusHistory(
	id uint,
	ticketID uint,
	status vo.Status,
	changedBy *uint,
	note string,
	changedAt time.Time,
) *StatusHistory {
	return &StatusHistory{
		id:        id,
		ticketID:  ticketID,
		status:    status,
		changedBy: changedBy,
		note:      note,
		changedAt: changedAt,
	}
}

func (h *StatusHistory) ID() uint             { return h.id }
func (h *StatusHistory) TicketID() uint       { return h.ticketID }
func (h *StatusHistory) Status() vo.Status    { return h.status }
func (h *StatusHistory) ChangedBy() *uint     { return h.changedBy }
func (h *StatusHistory) Note() string         { return h.note }
func (h *StatusHistory) ChangedAt() time.Time { return h.changedAt }
