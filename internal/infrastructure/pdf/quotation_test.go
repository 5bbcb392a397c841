package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"klevant/internal/domain/ticket"
	vo "klevant/internal/domain/ticket/valueobjects"
	sharedconfig "klevant/internal/shared/config"
)

func TestQuotationRenderer_Render(t *testing.T) {
	renderer := NewQuotationRenderer(sharedconfig.CompanyConfig{
		Name:    "KLEVANT TECHNOLOGIES",
		Tagline: "Sales and Service",
		Phone:   "+91 00000 00000",
		Email:   "support@klevant.example",
	})

	tk, err := ticket.ReconstructTicket(
		3,
		"Asha Menon",
		"9876543210",
		"asha@example.com",
		"12 Beach Road, Kochi",
		vo.ServiceACRepair,
		"AC not cooling",
		vo.StatusAccepted,
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

	itemA, err := ticket.NewQuotationItem("Compressor replacement", decimal.NewFromInt(4500), 1)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	itemB, err := ticket.NewQuotationItem("Gas refill", decimal.RequireFromString("749.50"), 2)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	q, err := ticket.ReconstructQuotation(9, 3, "valid for 15 days", false, nil, []ticket.QuotationItem{itemA, itemB}, time.Now())
	if err != nil {
		t.Fatalf("ReconstructQuotation() error = %v", err)
	}

	content, err := renderer.Render(tk, q)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(content) == 0 {
		t.Fatal("Render() returned empty document")
	}
	if !bytes.HasPrefix(content, []byte("%PDF-")) {
		t.Error("document does not start with PDF header")
	}
}
