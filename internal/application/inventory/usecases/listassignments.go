package usecases

import (
	"context"
	"time"

	"klevant/internal/domain/inventory"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

// ListAssignmentsQuery scopes the listing. When TechnicianID is set only
// that technician's assignments are returned; admins pass zero for all.
type ListAssignmentsQuery struct {
	TechnicianID uint
}

type AssignmentDTO struct {
	ID               uint       `json:"id"`
	TechnicianID     uint       `json:"technician_id"`
	ProductID        uint       `json:"product_id"`
	QuantityAssigned int        `json:"quantity_assigned"`
	QuantityReturned int        `json:"quantity_returned"`
	PendingQuantity  int        `json:"pending_quantity"`
	Status           string     `json:"status"`
	AssignedAt       time.Time  `json:"assigned_at"`
	ReturnedAt       *time.Time `json:"returned_at,omitempty"`
}

type ListAssignmentsResult struct {
	Assignments []AssignmentDTO `json:"assignments"`
}

type ListAssignmentsExecutor interface {
	Execute(ctx context.Context, query ListAssignmentsQuery) (*ListAssignmentsResult, error)
}

type ListAssignmentsUseCase struct {
	assignmentRepo inventory.Repository
	logger         logger.Interface
}

func NewListAssignmentsUseCase(assignmentRepo inventory.Repository, logger logger.Interface) *ListAssignmentsUseCase {
	return &ListAssignmentsUseCase{assignmentRepo: assignmentRepo, logger: logger}
}

func (uc *ListAssignmentsUseCase) Execute(ctx context.Context, query ListAssignmentsQuery) (*ListAssignmentsResult, error) {
	var (
		assignments []*inventory.OutwardAssignment
		err         error
	)
	if query.TechnicianID != 0 {
		assignments, err = uc.assignmentRepo.ListByTechnician(ctx, query.TechnicianID)
	} else {
		assignments, err = uc.assignmentRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list stock assignments", "error", err)
		return nil, errors.NewInternalError("failed to list stock assignments")
	}

	dtos := make([]AssignmentDTO, len(assignments))
	for i, a := range assignments {
		dtos[i] = AssignmentDTO{
			ID:               a.ID(),
			TechnicianID:     a.TechnicianID(),
			ProductID:        a.ProductID(),
			QuantityAssigned: a.QuantityAssigned(),
			QuantityReturned: a.QuantityReturned(),
			PendingQuantity:  a.PendingQuantity(),
			Status:           a.Status().String(),
			AssignedAt:       a.AssignedAt(),
			ReturnedAt:       a.ReturnedAt(),
		}
	}

	return &ListAssignmentsResult{Assignments: dtos}, nil
}
