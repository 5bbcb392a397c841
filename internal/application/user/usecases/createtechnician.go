package usecases

import (
	"context"

	"klevant/internal/domain/user"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

const generatedPasswordLength = 12

type CreateTechnicianCommand struct {
	Name    string
	Email   string
	Mobile  string
	Address string
	ActorID uint
}

type CreateTechnicianResult struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

type CreateTechnicianExecutor interface {
	Execute(ctx context.Context, cmd CreateTechnicianCommand) (*CreateTechnicianResult, error)
}

// CreateTechnicianUseCase provisions a technician account with a generated
// password and emails the credentials. The email is best-effort: a delivery
// failure is logged but the account is still created.
type CreateTechnicianUseCase struct {
	userRepo  user.Repository
	hasher    PasswordHasher
	passwords PasswordGenerator
	mailer    CredentialMailer
	logger    logger.Interface
}

func NewCreateTechnicianUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	passwords PasswordGenerator,
	mailer CredentialMailer,
	logger logger.Interface,
) *CreateTechnicianUseCase {
	return &CreateTechnicianUseCase{
		userRepo:  userRepo,
		hasher:    hasher,
		passwords: passwords,
		mailer:    mailer,
		logger:    logger,
	}
}

func (uc *CreateTechnicianUseCase) Execute(ctx context.Context, cmd CreateTechnicianCommand) (*CreateTechnicianResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("email is already registered")
	}

	password, err := uc.passwords.Generate(generatedPasswordLength)
	if err != nil {
		return nil, errors.NewInternalError("failed to generate password")
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, errors.NewInternalError("failed to hash password")
	}

	technician, err := user.NewTechnician(cmd.Name, cmd.Email, hash, cmd.Mobile, cmd.Address)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, technician); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email is already registered")
		}
		uc.logger.Errorw("failed to create technician", "email", cmd.Email, "error", err)
		return nil, errors.NewInternalError("failed to create technician")
	}

	if err := uc.mailer.SendTechnicianCredentials(technician.Email(), technician.Name(), password); err != nil {
		uc.logger.Warnw("failed to email technician credentials",
			"user_id", technician.ID(),
			"error", err,
		)
	}

	uc.logger.Infow("technician created",
		"user_id", technician.ID(),
		"actor_id", cmd.ActorID,
	)

	return &CreateTechnicianResult{UserID: technician.ID(), Email: technician.Email()}, nil
}
