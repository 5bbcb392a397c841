package usecases

import (
	"context"

	"klevant/internal/domain/user"
	vo "klevant/internal/domain/user/valueobjects"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type TechnicianDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
	Active bool   `json:"active"`
}

type ListTechniciansResult struct {
	Technicians []TechnicianDTO `json:"technicians"`
}

type ListTechniciansExecutor interface {
	Execute(ctx context.Context) (*ListTechniciansResult, error)
}

type ListTechniciansUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListTechniciansUseCase(userRepo user.Repository, logger logger.Interface) *ListTechniciansUseCase {
	return &ListTechniciansUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListTechniciansUseCase) Execute(ctx context.Context) (*ListTechniciansResult, error) {
	technicians, err := uc.userRepo.ListByRole(ctx, vo.RoleTechnician)
	if err != nil {
		uc.logger.Errorw("failed to list technicians", "error", err)
		return nil, errors.NewInternalError("failed to list technicians")
	}

	dtos := make([]TechnicianDTO, len(technicians))
	for i, t := range technicians {
		dtos[i] = TechnicianDTO{
			ID:     t.ID(),
			Name:   t.Name(),
			Email:  t.Email(),
			Mobile: t.Mobile(),
			Active: t.IsActive(),
		}
	}

	return &ListTechniciansResult{Technicians: dtos}, nil
}
