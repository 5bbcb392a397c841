package usecases

import (
	"context"
	"time"

	"klevant/internal/domain/inventory"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type ReturnStockCommand struct {
	AssignmentID uint
	Quantity     int
}

type ReturnStockResult struct {
	AssignmentID     uint       `json:"assignment_id"`
	QuantityReturned int        `json:"quantity_returned"`
	PendingQuantity  int        `json:"pending_quantity"`
	Status           string     `json:"status"`
	ReturnedAt       *time.Time `json:"returned_at,omitempty"`
}

type ReturnStockExecutor interface {
	Execute(ctx context.Context, cmd ReturnStockCommand) (*ReturnStockResult, error)
}

type ReturnStockUseCase struct {
	assignmentRepo inventory.Repository
	logger         logger.Interface
}

func NewReturnStockUseCase(assignmentRepo inventory.Repository, logger logger.Interface) *ReturnStockUseCase {
	return &ReturnStockUseCase{assignmentRepo: assignmentRepo, logger: logger}
}

func (uc *ReturnStockUseCase) Execute(ctx context.Context, cmd ReturnStockCommand) (*ReturnStockResult, error) {
	a, err := uc.assignmentRepo.GetByID(ctx, cmd.AssignmentID)
	if err != nil {
		return nil, err
	}

	if err := a.Return(cmd.Quantity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assignmentRepo.Update(ctx, a); err != nil {
		uc.logger.Errorw("failed to record stock return", "assignment_id", cmd.AssignmentID, "error", err)
		return nil, errors.NewInternalError("failed to record stock return")
	}

	uc.logger.Infow("stock returned",
		"assignment_id", a.ID(),
		"quantity", cmd.Quantity,
		"pending", a.PendingQuantity(),
		"status", a.Status().String(),
	)

	return &ReturnStockResult{
		AssignmentID:     a.ID(),
		QuantityReturned: a.QuantityReturned(),
		PendingQuantity:  a.PendingQuantity(),
		Status:           a.Status().String(),
		ReturnedAt:       a.ReturnedAt(),
	}, nil
}
