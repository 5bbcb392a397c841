package usecases

import (
	"context"

	"klevant/internal/domain/user"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID uint      `json:"user_id"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
	Tokens TokenPair `json:"tokens"`
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenService
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := uc.tokens.GeneratePair(u.ID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())

	return &LoginResult{
		UserID: u.ID(),
		Name:   u.Name(),
		Role:   u.Role().String(),
		Tokens: *pair,
	}, nil
}
