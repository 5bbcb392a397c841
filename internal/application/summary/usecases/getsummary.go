// Package usecases holds the admin dashboard summary query.
package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"klevant/internal/shared/errors"
	"klevant/internal/shared/logger"
)

// Summary is the raw aggregate read from storage. Amounts stay decimal
// until the DTO boundary.
type Summary struct {
	Products            int64
	Categories          int64
	Customers           int64
	Technicians         int64
	TicketsByStatus     map[string]int64
	SalesByTicketStatus map[string]decimal.Decimal
	TotalSalesAmount    decimal.Decimal
	TotalServicesAmount decimal.Decimal
	TotalQuotedAmount   decimal.Decimal
}

// SummaryReader runs the aggregate queries behind the dashboard.
type SummaryReader interface {
	Read(ctx context.Context) (*Summary, error)
}

type SummaryDTO struct {
	Products            int64             `json:"products"`
	Categories          int64             `json:"categories"`
	Customers           int64             `json:"customers"`
	Technicians         int64             `json:"technicians"`
	TicketsByStatus     map[string]int64  `json:"tickets_by_status"`
	SalesByTicketStatus map[string]string `json:"sales_by_ticket_status"`
	TotalSalesAmount    string            `json:"total_sales_amount"`
	TotalServicesAmount string            `json:"total_services_amount"`
	TotalQuotedAmount   string            `json:"total_quoted_amount"`
}

type GetSummaryExecutor interface {
	Execute(ctx context.Context) (*SummaryDTO, error)
}

type GetSummaryUseCase struct {
	reader SummaryReader
	logger logger.Interface
}

func NewGetSummaryUseCase(reader SummaryReader, logger logger.Interface) *GetSummaryUseCase {
	return &GetSummaryUseCase{reader: reader, logger: logger}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*SummaryDTO, error) {
	s, err := uc.reader.Read(ctx)
	if err != nil {
		uc.logger.Errorw("failed to read admin summary", "error", err)
		return nil, errors.NewInternalError("failed to read admin summary")
	}

	sales := make(map[string]string, len(s.SalesByTicketStatus))
	for status, amount := range s.SalesByTicketStatus {
		sales[status] = amount.StringFixed(2)
	}

	return &SummaryDTO{
		Products:            s.Products,
		Categories:          s.Categories,
		Customers:           s.Customers,
		Technicians:         s.Technicians,
		TicketsByStatus:     s.TicketsByStatus,
		SalesByTicketStatus: sales,
		TotalSalesAmount:    s.TotalSalesAmount.StringFixed(2),
		TotalServicesAmount: s.TotalServicesAmount.StringFixed(2),
		TotalQuotedAmount:   s.TotalQuotedAmount.StringFixed(2),
	}, nil
}
