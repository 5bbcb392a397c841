// Package notification defines in-app notifications. Rows are created as
// side effects of workflow transitions and are owned by the recipient.
package notification

import (
	"fmt"
	"time"
)

type Notification struct {
	id             uint
	recipientID    uint
	title          string
	message        string
	relatedTicketID *uint
	read           bool
	createdAt      time.Time
}

func NewNotification(recipientID uint, title, message string, relatedTicketID *uint) (*Notification, error) {
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	return &Notification{
		recipientID:     recipientID,
		title:           title,
		message:         message,
		relatedTicketID: relatedTicketID,
		createdAt:       time.Now(),
	}, nil
}

func ReconstructNotification(
	id uint,
	recipientID uint,
	title, message string,
	relatedTicketID *uint,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if recipientID == 0 {
		return nil, fmt.Errorf("recipient ID is required")
	}
	return &Notification{
		id:              id,
		recipientID:     recipientID,
		title:           title,
		message:         message,
		relatedTicketID: relatedTicketID,
		read:            read,
		createdAt:       createdAt,
	}, nil
}

func (n *Notification) ID() uint                { return n.id }
func (n *Notification) RecipientID() uint       { return n.recipientID }
func (n *Notification) Title() string           { return n.title }
func (n *Notification) Message() string         { return n.message }
func (n *Notification) RelatedTicketID() *uint  { return n.relatedTicketID }
func (n *Notification) IsRead() bool            { return n.read }
func (n *Notification) CreatedAt() time.Time    { return n.createdAt }

func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// MarkRead flips the read flag. Only the recipient may do this; the caller
// enforces ownership.
func (n *Notification) MarkRead() {
	n.read = true
}
