package ticket

import (
	"time"

	"github.com/shopspring/decimal"

	"klevant/internal/application/ticket/usecases"
	"klevant/internal/shared/errors"
)

type SubmitTicketRequest struct {
	CustomerName   string `json:"customer_name" binding:"required,max=100"`
	CustomerMobile string `json:"customer_mobile" binding:"required,max=15"`
	CustomerEmail  string `json:"customer_email" binding:"omitempty,email"`
	Address        string `json:"address" binding:"required"`
	ServiceType    string `json:"service_type" binding:"required"`
	Description    string `json:"description" binding:"required"`
}

type AssignTechnicianRequest struct {
	TechnicianID uint `json:"technician_id" binding:"required"`
}

type QuotationItemRequest struct {
	Description string `json:"description" binding:"required,max=200"`
	Price       string `json:"price" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

type CreateQuotationRequest struct {
	Notes string                 `json:"notes"`
	Items []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
}

type AddProductRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

type UpdateTicketRequest struct {
	Notes         *string    `json:"notes"`
	Payment       *string    `json:"payment"`
	DateAttending *time.Time `json:"date_attending"`
}

func (r CreateQuotationRequest) toItems() ([]usecases.QuotationItemInput, error) {
	items := make([]usecases.QuotationItemInput, len(r.Items))
	for i, item := range r.Items {
		price, err := parsePrice(item.Price)
		if err != nil {
			return nil, err
		}
		items[i] = usecases.QuotationItemInput{
			Description: item.Description,
			Price:       price,
			Quantity:    item.Quantity,
		}
	}
	return items, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, errors.NewValidationError("invalid price: " + s)
	}
	return price, nil
}
