package usecases

import (
	"context"

	"klevant/internal/domain/user"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

// UpdateProfileCommand updates the caller's own profile. A password change
// requires the current password.
type UpdateProfileCommand struct {
	UserID          uint
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

type ProfileDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Mobile string `json:"mobile,omitempty"`
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*ProfileDTO, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, userID uint) (*ProfileDTO, error)
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*ProfileDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.UpdateProfile(cmd.Name, cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.NewPassword != "" {
		if err := uc.hasher.Compare(u.PasswordHash(), cmd.CurrentPassword); err != nil {
			return nil, errors.NewUnauthorizedError("current password is incorrect")
		}
		hash, err := uc.hasher.Hash(cmd.NewPassword)
		if err != nil {
			return nil, errors.NewInternalError("failed to hash password")
		}
		if err := u.ChangePassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("failed to update profile")
	}

	return &ProfileDTO{
		ID:     u.ID(),
		Name:   u.Name(),
		Email:  u.Email(),
		Role:   u.Role().String(),
		Mobile: u.Mobile(),
	}, nil
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*ProfileDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ProfileDTO{
		ID:     u.ID(),
		Name:   u.Name(),
		Email:  u.Email(),
		Role:   u.Role().String(),
		Mobile: u.Mobile(),
	}, nil
}
