package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"klevant/internal/domain/user"
	vo "klevant/internal/domain/user/valueobjects"
	"klevant/internal/shared/errors"
)

func TestCreateTechnicianUseCase_Execute_Success(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockHasher)
	passwords := new(mockPasswordGenerator)
	mailer := new(mockCredentialMailer)

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(nil, errors.NewNotFoundError("user not found"))
	passwords.On("Generate", 12).Return("gen-password", nil)
	hasher.On("Hash", "gen-password").Return("hashed", nil)
	userRepo.On("Save", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) {
			_ = args.Get(1).(*user.User).SetID(5)
		}).
		Return(nil)
	mailer.On("SendTechnicianCredentials", "ravi@example.com", "Ravi Kumar", "gen-password").Return(nil)

	uc := NewCreateTechnicianUseCase(userRepo, hasher, passwords, mailer, noopLogger{})

	result, err := uc.Execute(context.Background(), CreateTechnicianCommand{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Mobile:  "9876501234",
		Address: "Kochi",
		ActorID: 1,
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, uint(5), result.UserID)
	assert.Equal(t, "ravi@example.com", result.Email)

	mailer.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestCreateTechnicianUseCase_Execute_EmailTaken(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockHasher)
	passwords := new(mockPasswordGenerator)
	mailer := new(mockCredentialMailer)

	existing := reconstructUser(t, 2, vo.RoleTechnician, true)
	userRepo.On("GetByEmail", mock.Anything, "asha@example.com").Return(existing, nil)

	uc := NewCreateTechnicianUseCase(userRepo, hasher, passwords, mailer, noopLogger{})

	result, err := uc.Execute(context.Background(), CreateTechnicianCommand{
		Name:  "Asha",
		Email: "asha@example.com",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	userRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateTechnicianUseCase_Execute_DuplicateOnSave(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockHasher)
	passwords := new(mockPasswordGenerator)
	mailer := new(mockCredentialMailer)

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(nil, errors.NewNotFoundError("user not found"))
	passwords.On("Generate", 12).Return("gen-password", nil)
	hasher.On("Hash", "gen-password").Return("hashed", nil)
	userRepo.On("Save", mock.Anything, mock.Anything).Return(fmt.Errorf("Error 1062: Duplicate entry 'ravi@example.com' for key 'users.idx_users_email'"))

	uc := NewCreateTechnicianUseCase(userRepo, hasher, passwords, mailer, noopLogger{})

	result, err := uc.Execute(context.Background(), CreateTechnicianCommand{
		Name:  "Ravi Kumar",
		Email: "ravi@example.com",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateTechnicianUseCase_Execute_MailFailureDoesNotFail(t *testing.T) {
	userRepo := new(mockUserRepository)
	hasher := new(mockHasher)
	passwords := new(mockPasswordGenerator)
	mailer := new(mockCredentialMailer)

	userRepo.On("GetByEmail", mock.Anything, "ravi@example.com").Return(nil, errors.NewNotFoundError("user not found"))
	passwords.On("Generate", 12).Return("gen-password", nil)
	hasher.On("Hash", "gen-password").Return("hashed", nil)
	userRepo.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_ = args.Get(1).(*user.User).SetID(5)
		}).
		Return(nil)
	mailer.On("SendTechnicianCredentials", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("smtp unreachable"))

	uc := NewCreateTechnicianUseCase(userRepo, hasher, passwords, mailer, noopLogger{})

	result, err := uc.Execute(context.Background(), CreateTechnicianCommand{
		Name:  "Ravi Kumar",
		Email: "ravi@example.com",
	})

	// credential delivery is best-effort
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, uint(5), result.UserID)
}
