// Package inventory tracks stock handed out to technicians and its return.
package inventory

import (
	"fmt"
	"time"
)

// AssignmentStatus flips to returned exactly when the pending quantity
// reaches zero.
type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentReturned AssignmentStatus = "returned"
)

func (s AssignmentStatus) String() string {
	return string(s)
}

// OutwardAssignment records product stock handed to a technician. The
// returned quantity only ever grows and never exceeds the assigned quantity.
type OutwardAssignment struct {
	id               uint
	technicianID     uint
	productID        uint
	quantityAssigned int
	quantityReturned int
	status           AssignmentStatus
	assignedAt       time.Time
	returnedAt       *time.Time
}

func NewOutwardAssignment(technicianID, productID uint, quantity int) (*OutwardAssignment, error) {
	if technicianID == 0 {
		return nil, fmt.Errorf("technician ID is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("assigned quantity must be at least 1")
	}
	return &OutwardAssignment{
		technicianID:     technicianID,
		productID:        productID,
		quantityAssigned: quantity,
		status:           AssignmentPending,
		assignedAt:       time.Now(),
	}, nil
}

func ReconstructOutwardAssignment(
	id uint,
	technicianID, productID uint,
	quantityAssigned, quantityReturned int,
	status AssignmentStatus,
	assignedAt time.Time,
	returnedAt *time.Time,
) (*OutwardAssignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}
	if quantityReturned > quantityAssigned {
		return nil, fmt.Errorf("returned quantity exceeds assigned quantity")
	}
	return &OutwardAssignment{
		id:               id,
		technicianID:     technicianID,
		productID:        productID,
		quantityAssigned: quantityAssigned,
		quantityReturned: quantityReturned,
		status:           status,
		assignedAt:       assignedAt,
		returnedAt:       returnedAt,
	}, nil
}

func (a *OutwardAssignment) ID() uint                 { return a.id }
func (a *OutwardAssignment) TechnicianID() uint       { return a.technicianID }
func (a *OutwardAssignment) ProductID() uint          { return a.productID }
func (a *OutwardAssignment) QuantityAssigned() int    { return a.quantityAssigned }
func (a *OutwardAssignment) QuantityReturned() int    { return a.quantityReturned }
func (a *OutwardAssignment) Status() AssignmentStatus { return a.status }
func (a *OutwardAssignment) AssignedAt() time.Time    { return a.assignedAt }
func (a *OutwardAssignment) ReturnedAt() *time.Time   { return a.returnedAt }

func (a *OutwardAssignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

// PendingQuantity is the stock still out with the technician.
func (a *OutwardAssignment) PendingQuantity() int {
	return a.quantityAssigned - a.quantityReturned
}

// Return books a partial or full return. Over-returns are rejected and
// leave the record unchanged; retrying after a partial failure requires
// re-checking the pending quantity first.
func (a *OutwardAssignment) Return(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("return quantity must be positive")
	}
	if quantity > a.PendingQuantity() {
		return fmt.Errorf("return quantity %d exceeds pending quantity %d", quantity, a.PendingQuantity())
	}
	a.quantityReturned += quantity
	if a.quantityReturned == a.quantityAssigned {
		a.status = AssignmentReturned
		now := time.Now()
		a.returnedAt = &now
	}
	return nil
}
