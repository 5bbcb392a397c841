// Package catalog holds the storefront product and category entities.
// These are uniform CRUD records; the relational schema carries the only
// invariants, so plain structs are used instead of full aggregates.
package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID   uint
	Name string
}

func NewCategory(name string) (*Category, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("category name exceeds maximum length of 100 characters")
	}
	return &Category{Name: name}, nil
}

type Product struct {
	ID          uint
	Name        string
	ImageURL    string
	Price       decimal.Decimal
	Description string
	CategoryID  uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(name, imageURL, description string, price decimal.Decimal, categoryID uint) (*Product, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("product name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("product name exceeds maximum length of 100 characters")
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	return &Product{
		Name:        name,
		ImageURL:    imageURL,
		Price:       price,
		Description: description,
		CategoryID:  categoryID,
	}, nil
}
