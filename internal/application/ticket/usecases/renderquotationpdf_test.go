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

func TestRenderQuotationPDFUseCase_Execute_Success(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	quotationRepo := new(mockQuotationRepository)
	renderer := new(mockRenderer)

	tk := reconstructTicket(t, 3, vo.StatusAccepted)
	item, err := ticket.NewQuotationItem("Compressor", decimal.NewFromInt(500), 1)
	assert.NoError(t, err)
	q, err := ticket.NewQuotation(3, "", []ticket.QuotationItem{item})
	assert.NoError(t, err)

	ticketRepo.On("GetByID", mock.Anything, uint(3)).Return(tk, nil)
	quotationRepo.On("GetByTicketID", mock.Anything, uint(3)).Return(q, nil)
	renderer.On("Render", tk, q).Return([]byte("%PDF-1.3 content"), nil)

	uc := NewRenderQuotationPDFUseCase(ticketRepo, quotationRepo, renderer, noopLogger{})

	result, execErr := uc.Execute(context.Background(), RenderQuotationPDFCommand{TicketID: 3})

	assert.NoError(t, execErr)
	assert.NotNil(t, result)
	assert.Equal(t, "quotation_ticket_3.pdf", result.FileName)
	assert.Equal(t, []byte("%PDF-1.3 content"), result.Content)
}

func TestRenderQuotationPDFUseCase_Execute_NoQuotation(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	quotationRepo := new(mockQuotationRepository)
	renderer := new(mockRenderer)

	tk := reconstructTicket(t, 3, vo.StatusAccepted)
	ticketRepo.On("GetByID", mock.Anything, uint(3)).Return(tk, nil)
	quotationRepo.On("GetByTicketID", mock.Anything, uint(3)).Return(nil, nil)

	uc := NewRenderQuotationPDFUseCase(ticketRepo, quotationRepo, renderer, noopLogger{})

	result, err := uc.Execute(context.Background(), RenderQuotationPDFCommand{TicketID: 3})

	assert.Nil(t, result)
	assert.True(t, errors.IsConflictError(err))
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestRenderQuotationPDFUseCase_Execute_RenderFailure(t *testing.T) {
	ticketRepo := new(mockTicketRepository)
	quotationRepo := new(mockQuotationRepository)
	renderer := new(mockRenderer)

	tk := reconstructTicket(t, 3, vo.StatusAccepted)
	item, err := ticket.NewQuotationItem("Compressor", decimal.NewFromInt(500), 1)
	assert.NoError(t, err)
	q, err := ticket.NewQuotation(3, "", []ticket.QuotationItem{item})
	assert.NoError(t, err)

	ticketRepo.On("GetByID", mock.Anything, uint(3)).Return(tk, nil)
	quotationRepo.On("GetByTicketID", mock.Anything, uint(3)).Return(q, nil)
	renderer.On("Render", tk, q).Return(nil, fmt.Errorf("font missing"))

	uc := NewRenderQuotationPDFUseCase(ticketRepo, quotationRepo, renderer, noopLogger{})

	result, execErr := uc.Execute(context.Background(), RenderQuotationPDFCommand{TicketID: 3})

	assert.Nil(t, result)
	appErr := errors.GetAppError(execErr)
	assert.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
