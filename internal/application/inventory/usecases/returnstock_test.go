package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"klevant/internal/domain/inventory"
	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

type mockAssignmentRepository struct {
	mock.Mock
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *inventory.OutwardAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAssignmentRepository) Update(ctx context.Context, a *inventory.OutwardAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockAssignmentRepository) GetByID(ctx context.Context, id uint) (*inventory.OutwardAssignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.OutwardAssignment), args.Error(1)
}

func (m *mockAssignmentRepository) List(ctx context.Context) ([]*inventory.OutwardAssignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.OutwardAssignment), args.Error(1)
}

func (m *mockAssignmentRepository) ListByTechnician(ctx context.Context, technicianID uint) ([]*inventory.OutwardAssignment, error) {
	args := m.Called(ctx, technicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.OutwardAssignment), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }

func reconstructAssignment(t *testing.T, assigned, returned int) *inventory.OutwardAssignment {
	t.Helper()
	a, err := inventory.ReconstructOutwardAssignment(
		1, 7, 3, assigned, returned, inventory.AssignmentPending, time.Now(), nil,
	)
	if err != nil {
		t.Fatalf("ReconstructOutwardAssignment() error = %v", err)
	}
	return a
}

func TestReturnStockUseCase_Execute_Partial(t *testing.T) {
	repo := new(mockAssignmentRepository)

	a := reconstructAssignment(t, 10, 0)
	repo.On("GetByID", mock.Anything, uint(1)).Return(a, nil)
	repo.On("Update", mock.Anything, a).Return(nil)

	uc := NewReturnStockUseCase(repo, noopLogger{})

	result, err := uc.Execute(context.Background(), ReturnStockCommand{AssignmentID: 1, Quantity: 4})

	assert.NoError(t, err)
	assert.Equal(t, 4, result.QuantityReturned)
	assert.Equal(t, 6, result.PendingQuantity)
	assert.Equal(t, "pending", result.Status)
	assert.Nil(t, result.ReturnedAt)

	repo.AssertExpectations(t)
}

func TestReturnStockUseCase_Execute_Full(t *testing.T) {
	repo := new(mockAssignmentRepository)

	a := reconstructAssignment(t, 10, 6)
	repo.On("GetByID", mock.Anything, uint(1)).Return(a, nil)
	repo.On("Update", mock.Anything, a).Return(nil)

	uc := NewReturnStockUseCase(repo, noopLogger{})

	result, err := uc.Execute(context.Background(), ReturnStockCommand{AssignmentID: 1, Quantity: 4})

	assert.NoError(t, err)
	assert.Equal(t, 10, result.QuantityReturned)
	assert.Equal(t, 0, result.PendingQuantity)
	assert.Equal(t, "returned", result.Status)
	assert.NotNil(t, result.ReturnedAt)
}

func TestReturnStockUseCase_Execute_OverReturn(t *testing.T) {
	repo := new(mockAssignmentRepository)

	a := reconstructAssignment(t, 10, 8)
	repo.On("GetByID", mock.Anything, uint(1)).Return(a, nil)

	uc := NewReturnStockUseCase(repo, noopLogger{})

	result, err := uc.Execute(context.Background(), ReturnStockCommand{AssignmentID: 1, Quantity: 3})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 8, a.QuantityReturned())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReturnStockUseCase_Execute_NotFound(t *testing.T) {
	repo := new(mockAssignmentRepository)
	repo.On("GetByID", mock.Anything, uint(99)).Return(nil, errors.NewNotFoundError("assignment not found"))

	uc := NewReturnStockUseCase(repo, noopLogger{})

	result, err := uc.Execute(context.Background(), ReturnStockCommand{AssignmentID: 99, Quantity: 1})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}
