package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"klevant/internal/domain/user"
	vo "klevant/internal/domain/user/valueobjects"
	"klevant/internal/shared/logger"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role vo.Role) ([]*user.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role vo.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GeneratePair(userID uint, role string) (*TokenPair, error) {
	args := m.Called(userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenPair), args.Error(1)
}

func (m *mockTokenService) RefreshPair(refreshToken string) (*TokenPair, error) {
	args := m.Called(refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenPair), args.Error(1)
}

type mockPasswordGenerator struct {
	mock.Mock
}

func (m *mockPasswordGenerator) Generate(length int) (string, error) {
	args := m.Called(length)
	return args.String(0), args.Error(1)
}

type mockCredentialMailer struct {
	mock.Mock
}

func (m *mockCredentialMailer) SendTechnicianCredentials(to, name, password string) error {
	args := m.Called(to, name, password)
	return args.Error(0)
}

type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }

func reconstructUser(t *testing.T, id uint, role vo.Role, active bool) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, "Asha Menon", "asha@example.com", "stored-hash",
		role, "9876543210", "Kochi",
		active, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("ReconstructUser() error = %v", err)
	}
	return u
}
