package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"klevant/internal/domain/ticket"
	vo "klevant/internal/domain/ticket/valueobjects"
	"klevant/internal/shared/errors"
)

func TestCreateQuotationUseCase_Execute_Success(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	quotationRepo := new(mockQuotationRepository)

	tk := reconstructTicket(t, 1, vo.StatusAccepted)
	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(tk, nil)
	quotationRepo.On("GetByTicketID", mock.Anything, uint(1)).Return(nil, nil)
	quotationRepo.On("Save", mock.Anything, mock.AnythingOfType("*ticket.Quotation")).Return(nil)

	uc := NewCreateQuotationUseCase(ticketRepo, quotationRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), CreateQuotationCommand{
		TicketID: 1,
		Notes:    "parts included",
		Items: []QuotationItemInput{
			{Description: "Compressor", Price: decimal.NewFromInt(500), Quantity: 1},
			{Description: "Labour", Price: decimal.NewFromInt(300), Quantity: 1},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, uint(1), result.TicketID)
	assert.Equal(t, "800.00", result.TotalAmount)
	assert.Len(t, result.Items, 2)

	quotationRepo.AssertExpectations(t)
}

func TestCreateQuotationUseCase_Execute_AlreadyExists(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	quotationRepo := new(mockQuotationRepository)

	tk := reconstructTicket(t, 1, vo.StatusAccepted)
	item, err := ticket.NewQuotationItem("Compressor", decimal.NewFromInt(500), 1)
	assert.NoError(t, err)
	existing, err := ticket.NewQuotation(1, "", []ticket.QuotationItem{item})
	assert.NoError(t, err)

	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(tk, nil)
	quotationRepo.On("GetByTicketID", mock.Anything, uint(1)).Return(existing, nil)

	uc := NewCreateQuotationUseCase(ticketRepo, quotationRepo, noopLogger{})

	result, execErr := uc.Execute(context.Background(), CreateQuotationCommand{
		TicketID: 1,
		Items:    []QuotationItemInput{{Description: "Part", Price: decimal.NewFromInt(10), Quantity: 1}},
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(execErr))
	assert.Equal(t, 400, errors.GetAppError(execErr).Code)
	quotationRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateQuotationUseCase_Execute_DuplicateKeyOnSave(t *testing.T) {
	// two concurrent creates can both pass the existence check; the unique
	// index on ticket_id turns the second save into a conflict
	ticketRepo := new(mockTicketRepository)
	quotationRepo := new(mockQuotationRepository)

	tk := reconstructTicket(t, 1, vo.StatusAccepted)
	ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(tk, nil)
	quotationRepo.On("GetByTicketID", mock.Anything, uint(1)).Return(nil, nil)
	quotationRepo.On("Save", mock.Anything, mock.Anything).Return(fmt.Errorf("Error 1062: Duplicate entry '1' for key 'quotations.idx_quotations_ticket_id'"))

	uc := NewCreateQuotationUseCase(ticketRepo, quotationRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), CreateQuotationCommand{
		TicketID: 1,
		Items:    []QuotationItemInput{{Description: "Part", Price: decimal.NewFromInt(10), Quantity: 1}},
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateQuotationUseCase_Execute_InvalidItems(t *testing.T) {
	tests := []struct {
		name  string
		items []QuotationItemInput
	}{
		{"no items", nil},
		{"negative price", []QuotationItemInput{{Description: "Part", Price: decimal.NewFromInt(-5), Quantity: 1}}},
		{"zero quantity", []QuotationItemInput{{Description: "Part", Price: decimal.NewFromInt(5), Quantity: 0}}},
		{"missing description", []QuotationItemInput{{Price: decimal.NewFromInt(5), Quantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticketRepo := new(mockTicketRepository)
			quotationRepo := new(mockQuotationRepository)

			tk := reconstructTicket(t, 1, vo.StatusAccepted)
			ticketRepo.On("GetByID", mock.Anything, uint(1)).Return(tk, nil)
			quotationRepo.On("GetByTicketID", mock.Anything, uint(1)).Return(nil, nil)

			uc := NewCreateQuotationUseCase(ticketRepo, quotationRepo, noopLogger{})

			result, err := uc.Execute(context.Background(), CreateQuotationCommand{TicketID: 1, Items: tt.items})

			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
