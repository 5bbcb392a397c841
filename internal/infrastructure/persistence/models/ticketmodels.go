// Package models defines the gorm persistence models. Mapping to and from
// domain types happens in the mappers package.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketModel struct {
	ID             uint            `gorm:"primaryKey"`
	CustomerName   string          `gorm:"size:100;not null"`
	CustomerMobile string          `gorm:"size:15;not null;index"`
	CustomerEmail  string          `gorm:"size:255"`
	Address        string          `gorm:"type:text;not null"`
	ServiceType    string          `gorm:"size:50;not null;index"`
	Description    string          `gorm:"type:text;not null"`
	Status         string          `gorm:"size:20;not null;index;default:pending"`
	TechnicianID   *uint           `gorm:"index"`
	AmountPaid     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Notes          string          `gorm:"type:text"`
	DateAttending  *time.Time
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}

type QuotationModel struct {
	ID                 uint  `gorm:"primaryKey"`
	TicketID           uint  `gorm:"uniqueIndex;not null"`
	Notes              string `gorm:"type:text"`
	AcceptedByCustomer bool  `gorm:"not null;default:false"`
	AcceptedAt         *time.Time
	Items              []QuotationItemModel `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
}

func (QuotationModel) TableName() string {
	return "quotations"
}

type QuotationItemModel struct {
	ID          uint            `gorm:"primaryKey"`
	QuotationID uint            `gorm:"index;not null"`
	Description string          `gorm:"size:200;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null;default:1"`
}

func (QuotationItemModel) TableName() string {
	return "quotation_items"
}

type StatusHistoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"index;not null"`
	Status    string `gorm:"size:20;not null"`
	ChangedBy *uint
	Note      string    `gorm:"size:255"`
	ChangedAt time.Time `gorm:"index;not null"`
}

func (StatusHistoryModel) TableName() string {
	return "ticket_status_history"
}

type AdditionalProductModel struct {
	ID          uint            `gorm:"primaryKey"`
	TicketID    uint            `gorm:"index;not null"`
	Name        string          `gorm:"size:100;not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null;default:1"`
	SoldAt      time.Time       `gorm:"not null"`
}

func (AdditionalProductModel) TableName() string {
	return "ticket_additional_products"
}
