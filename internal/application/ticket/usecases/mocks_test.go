package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"klevant/internal/domain/ticket"
	vo "klevant/internal/domain/ticket/valueobjects"
	"klevant/internal/domain/user"
	uservo "klevant/internal/domain/user/valueobjects"
	"klevant/internal/shared/logger"
)

type mockTicketRepository struct {
	mock.Mock
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*ticket.Ticket), args.Get(1).(int64), args.Error(2)
}

type mockQuotationRepository struct {
	mock.Mock
}

func (m *mockQuotationRepository) Save(ctx context.Context, q *ticket.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *mockQuotationRepository) Update(ctx context.Context, q *ticket.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *mockQuotationRepository) GetByID(ctx context.Context, id uint) (*ticket.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Quotation), args.Error(1)
}

func (m *mockQuotationRepository) GetByTicketID(ctx context.Context, ticketID uint) (*ticket.Quotation, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Quotation), args.Error(1)
}

type mockStatusHistoryRepository struct {
	mock.Mock
}

func (m *mockStatusHistoryRepository) Append(ctx context.Context, h *ticket.StatusHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *mockStatusHistoryRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.StatusHistory, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.StatusHistory), args.Error(1)
}

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

func (m *mockUserRepository) ListByRole(ctx context.Context, role uservo.Role) ([]*user.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *mockUserRepository) CountByRole(ctx context.Context, role uservo.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyTicketAssigned(ctx context.Context, technician *user.User, t *ticket.Ticket) error {
	args := m.Called(ctx, technician, t)
	return args.Error(0)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(t *ticket.Ticket, q *ticket.Quotation) ([]byte, error) {
	args := m.Called(t, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// stubTxManager runs the callback directly, with no transaction around it.
type stubTxManager struct {
	err error
}

func (s *stubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(ctx)
}

// noopLogger discards all log output in tests.
type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }

func reconstructTicket(t *testing.T, id uint, status vo.Status) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		id,
		"Asha Menon",
		"9876543210",
		"asha@example.com",
		"12 Beach Road, Kochi",
		vo.ServiceACRepair,
		"AC not cooling",
		status,
		nil,
		decimal.Zero,
		"",
		nil,
		time.Now(),
		time.Now(),
	)
	if err != nil {
		t.Fatalf("ReconstructTicket() error = %v", err)
	}
	return tk
}

func reconstructTechnician(t *testing.T, id uint, name string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(
		id, name, "tech@example.com", "hash",
		uservo.RoleTechnician, "9876501234", "Kochi",
		true, time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("ReconstructUser() error = %v", err)
	}
	return u
}
