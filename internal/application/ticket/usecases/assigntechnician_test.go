package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	vo "klevant/internal/domain/ticket/valueobjects"
	"klevant/internal/domain/user"
	uservo "klevant/internal/domain/user/valueobjects"
	"klevant/internal/shared/errors"
)

func TestAssignTechnicianUseCase_Execute_Success(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	historyRepo := new(mockStatusHistoryRepository)
	userRepo := new(mockUserRepository)
	notifier := new(mockNotifier)

	tk := reconstructTicket(t, 1, vo.StatusAccepted)
	technician := reconstructTechnician(t, 7, "Ravi Kumar")

	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(tk, nil)
	userRepo.On("GetByID", mock.Anything, uint(7)).Return(technician, nil)
	ticketRepo.On("Update", mock.Anything, tk).Return(nil)
	historyRepo.On("Append", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyTicketAssigned", mock.Anything, technician, tk).Return(nil)

	uc := NewAssignTechnicianUseCase(ticketRepo, historyRepo, userRepo, &stubTxManager{}, notifier, noopLogger{})

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 1, TechnicianID: 7, ActorID: 9})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, uint(7), result.TechnicianID)
	assert.Equal(t, "in_progress", result.Status)
	assert.True(t, result.NotificationSent)
	assert.Empty(t, result.NotificationError)

	ticketRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAssignTechnicianUseCase_Execute_NotATechnician(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	historyRepo := new(mockStatusHistoryRepository)
	userRepo := new(mockUserRepository)
	notifier := new(mockNotifier)

	tk := reconstructTicket(t, 1, vo.StatusAccepted)
	customer, err := user.ReconstructUser(
		7, "Asha", "asha@example.com", "hash",
		uservo.RoleCustomer, "", "",
		true, time.Now(), time.Now(),
	)
	assert.NoError(t, err)

	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(tk, nil)
	userRepo.On("GetByID", mock.Anything, uint(7)).Return(customer, nil)

	uc := NewAssignTechnicianUseCase(ticketRepo, historyRepo, userRepo, &stubTxManager{}, notifier, noopLogger{})

	result, execErr := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 1, TechnicianID: 7, ActorID: 9})

	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(execErr))
	ticketRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyTicketAssigned", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignTechnicianUseCase_Execute_NotificationFailure(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	historyRepo := new(mockStatusHistoryRepository)
	userRepo := new(mockUserRepository)
	notifier := new(mockNotifier)

	tk := reconstructTicket(t, 1, vo.StatusAccepted)
	technician := reconstructTechnician(t, 7, "Ravi Kumar")

	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(tk, nil)
	userRepo.On("GetByID", mock.Anything, uint(7)).Return(technician, nil)
	ticketRepo.On("Update", mock.Anything, tk).Return(nil)
	historyRepo.On("Append", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyTicketAssigned", mock.Anything, technician, tk).Return(fmt.Errorf("smtp unreachable"))

	uc := NewAssignTechnicianUseCase(ticketRepo, historyRepo, userRepo, &stubTxManager{}, notifier, noopLogger{})

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 1, TechnicianID: 7, ActorID: 9})

	// the assignment succeeds even when the notification cannot be delivered
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.False(t, result.NotificationSent)
	assert.Contains(t, result.NotificationError, "smtp unreachable")
	assert.Equal(t, "in_progress", result.Status)
}

func TestAssignTechnicianUseCase_Execute_Reassignment(t *testing.T) {
	// assignment carries no status guard: a resolved ticket re-enters
	// in_progress when re-assigned
	ticketRepo := new(mockTicketRepository)
	historyRepo := new(mockStatusHistoryRepository)
	userRepo := new(mockUserRepository)
	notifier := new(mockNotifier)

	tk := reconstructTicket(t, 1, vo.StatusResolved)
	technician := reconstructTechnician(t, 8, "Vimal Raj")

	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(tk, nil)
	userRepo.On("GetByID", mock.Anything, uint(8)).Return(technician, nil)
	ticketRepo.On("Update", mock.Anything, tk).Return(nil)
	historyRepo.On("Append", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyTicketAssigned", mock.Anything, technician, tk).Return(nil)

	uc := NewAssignTechnicianUseCase(ticketRepo, historyRepo, userRepo, &stubTxManager{}, notifier, noopLogger{})

	result, err := uc.Execute(context.Background(), AssignTechnicianCommand{TicketID: 1, TechnicianID: 8, ActorID: 9})

	assert.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
}
