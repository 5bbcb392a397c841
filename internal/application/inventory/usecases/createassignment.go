package usecases

import (
	"context"

	"klevant/internal/domain/inventory"
	"klevant/internal/domain/user"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type CreateAssignmentCommand struct {
	TechnicianID uint
	ProductID    uint
	Quantity     int
}

type CreateAssignmentResult struct {
	AssignmentID uint   `json:"assignment_id"`
	Status       string `json:"status"`
}

type CreateAssignmentExecutor interface {
	Execute(ctx context.Context, cmd CreateAssignmentCommand) (*CreateAssignmentResult, error)
}

type CreateAssignmentUseCase struct {
	assignmentRepo inventory.Repository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewCreateAssignmentUseCase(
	assignmentRepo inventory.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateAssignmentUseCase {
	return &CreateAssignmentUseCase{
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

func (uc *CreateAssignmentUseCase) Execute(ctx context.Context, cmd CreateAssignmentCommand) (*CreateAssignmentResult, error) {
	technician, err := uc.userRepo.GetByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, err
	}
	if !technician.IsTechnician() {
		return nil, errors.NewNotFoundError("technician not found")
	}

	a, err := inventory.NewOutwardAssignment(technician.ID(), cmd.ProductID, cmd.Quantity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.assignmentRepo.Save(ctx, a); err != nil {
		uc.logger.Errorw("failed to create stock assignment", "technician_id", cmd.TechnicianID, "error", err)
		return nil, errors.NewInternalError("failed to create stock assignment")
	}

	uc.logger.Infow("stock assigned to technician",
		"assignment_id", a.ID(),
		"technician_id", technician.ID(),
		"product_id", cmd.ProductID,
		"quantity", cmd.Quantity,
	)

	return &CreateAssignmentResult{AssignmentID: a.ID(), Status: a.Status().String()}, nil
}
