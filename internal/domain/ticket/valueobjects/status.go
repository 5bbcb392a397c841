package valueobjects

import "fmt"

// Status is the lifecycle state of a service ticket.
//
// Accept and reject are guarded (pending only). Technician assignment,
// mark-resolved and mark-completed are unconditional writes; that
// permissiveness is intentional and must not be tightened here.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusCompleted  Status = "completed"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusAccepted:   true,
	StatusRejected:   true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusCompleted:  true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func (s Status) IsRejected() bool {
	return s == StatusRejected
}

func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

// AllStatuses returns every valid status, useful for summary grouping.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusAccepted,
		StatusRejected,
		StatusInProgress,
		StatusResolved,
		StatusCompleted,
	}
}
