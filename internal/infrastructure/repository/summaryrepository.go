package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"klevant/internal/application/summary/usecases"
	vo "klevant/internal/domain/user/valueobjects"
	"klevant/internal/infrastructure/persistence/models"
	"klevant/internal/shared/db"
)

// SummaryRepository runs the aggregate queries behind the admin dashboard.
type SummaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(database *gorm.DB) *SummaryRepository {
	return &SummaryRepository{db: database}
}

type statusCountRow struct {
	Status string
	Count  int64
}

type statusSumRow struct {
	Status string
	Total  decimal.Decimal
}

func (r *SummaryRepository) Read(ctx context.Context) (*usecases.Summary, error) {
	conn := db.GetTxFromContext(ctx, r.db)
	s := &usecases.Summary{
		TicketsByStatus:     make(map[string]int64),
		SalesByTicketStatus: make(map[string]decimal.Decimal),
		TotalSalesAmount:    decimal.Zero,
		TotalServicesAmount: decimal.Zero,
		TotalQuotedAmount:   decimal.Zero,
	}

	if err := conn.Model(&models.ProductModel{}).Count(&s.Products).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.CategoryModel{}).Count(&s.Categories).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.UserModel{}).Where("role = ?", vo.RoleCustomer.String()).Count(&s.Customers).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.UserModel{}).Where("role = ?", vo.RoleTechnician.String()).Count(&s.Technicians).Error; err != nil {
		return nil, err
	}

	var ticketCounts []statusCountRow
	err := conn.Model(&models.TicketModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&ticketCounts).Error
	if err != nil {
		return nil, err
	}
	for _, row := range ticketCounts {
		s.TicketsByStatus[row.Status] = row.Count
	}

	var salesByStatus []statusSumRow
	err = conn.Model(&models.AdditionalProductModel{}).
		Select("tickets.status AS status, COALESCE(SUM(ticket_additional_products.price * ticket_additional_products.quantity), 0) AS total").
		Joins("JOIN tickets ON tickets.id = ticket_additional_products.ticket_id").
		Group("tickets.status").
		Scan(&salesByStatus).Error
	if err != nil {
		return nil, err
	}
	for _, row := range salesByStatus {
		s.SalesByTicketStatus[row.Status] = row.Total
		s.TotalSalesAmount = s.TotalSalesAmount.Add(row.Total)
	}

	var services decimal.Decimal
	err = conn.Model(&models.TicketModel{}).
		Select("COALESCE(SUM(amount_paid), 0)").
		Scan(&services).Error
	if err != nil {
		return nil, err
	}
	s.TotalServicesAmount = services

	var quoted decimal.Decimal
	err = conn.Model(&models.QuotationItemModel{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&quoted).Error
	if err != nil {
		return nil, err
	}
	s.TotalQuotedAmount = quoted

	return s, nil
}
