package ticket

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewQuotationItem(t *testing.T) {
	tests := []struct {
		name        string
		description string
		price       decimal.Decimal
		quantity    int
		wantErr     bool
	}{
		{"valid", "Compressor", decimal.NewFromInt(500), 1, false},
		{"free item", "Inspection", decimal.Zero, 1, false},
		{"missing description", "", decimal.NewFromInt(10), 1, true},
		{"description too long", strings.Repeat("a", 201), decimal.NewFromInt(10), 1, true},
		{"negative price", "Part", decimal.NewFromInt(-1), 1, true},
		{"zero quantity", "Part", decimal.NewFromInt(10), 0, true},
		{"negative quantity", "Part", decimal.NewFromInt(10), -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuotationItem(tt.description, tt.price, tt.quantity)
			if tt.wantErr && err == nil {
				t.Error("NewQuotationItem() error = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("NewQuotationItem() error = %v, want nil", err)
			}
		})
	}
}

func TestQuotationItem_LineTotal(t *testing.T) {
	item, err := NewQuotationItem("Gas refill", decimal.RequireFromString("149.50"), 3)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	if !item.LineTotal().Equal(decimal.RequireFromString("448.50")) {
		t.Errorf("LineTotal() = %v, want 448.50", item.LineTotal())
	}
}

func TestNewQuotation(t *testing.T) {
	item, err := NewQuotationItem("Compressor", decimal.NewFromInt(500), 1)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}

	if _, err := NewQuotation(0, "", []QuotationItem{item}); err == nil {
		t.Error("NewQuotation with zero ticket ID error = nil, want error")
	}
	if _, err := NewQuotation(1, "", nil); err == nil {
		t.Error("NewQuotation without items error = nil, want error")
	}

	q, err := NewQuotation(1, "parts included", []QuotationItem{item})
	if err != nil {
		t.Fatalf("NewQuotation() error = %v", err)
	}
	if q.AcceptedByCustomer() {
		t.Error("new quotation should not be accepted")
	}
	if q.AcceptedAt() != nil {
		t.Error("new quotation should have no acceptance time")
	}
}

func TestQuotation_TotalAmount(t *testing.T) {
	itemA, err := NewQuotationItem("Compressor", decimal.NewFromInt(500), 1)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	itemB, err := NewQuotationItem("Labour", decimal.NewFromInt(300), 1)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}

	q, err := NewQuotation(1, "", []QuotationItem{itemA, itemB})
	if err != nil {
		t.Fatalf("NewQuotation() error = %v", err)
	}
	if !q.TotalAmount().Equal(decimal.NewFromInt(800)) {
		t.Errorf("TotalAmount() = %v, want 800", q.TotalAmount())
	}
}

func TestQuotation_TotalAmountOrderIndependent(t *testing.T) {
	itemA, err := NewQuotationItem("Compressor", decimal.RequireFromString("449.99"), 2)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	itemB, err := NewQuotationItem("Gas refill", decimal.RequireFromString("150.50"), 3)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	itemC, err := NewQuotationItem("Labour", decimal.NewFromInt(300), 1)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}

	orders := [][]QuotationItem{
		{itemA, itemB, itemC},
		{itemC, itemB, itemA},
		{itemB, itemA, itemC},
	}

	want := decimal.RequireFromString("1651.48")
	for i, items := range orders {
		q, err := NewQuotation(1, "", items)
		if err != nil {
			t.Fatalf("NewQuotation() error = %v", err)
		}
		if !q.TotalAmount().Equal(want) {
			t.Errorf("order %d: TotalAmount() = %v, want %v", i, q.TotalAmount(), want)
		}
	}
}

func TestQuotation_AcceptAndRejectByCustomer(t *testing.T) {
	item, err := NewQuotationItem("Compressor", decimal.NewFromInt(500), 1)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	q, err := NewQuotation(1, "", []QuotationItem{item})
	if err != nil {
		t.Fatalf("NewQuotation() error = %v", err)
	}

	q.AcceptByCustomer()
	if !q.AcceptedByCustomer() {
		t.Error("AcceptByCustomer() did not set accepted flag")
	}
	if q.AcceptedAt() == nil {
		t.Error("AcceptByCustomer() did not stamp acceptance time")
	}

	q.RejectByCustomer()
	if q.AcceptedByCustomer() {
		t.Error("RejectByCustomer() did not clear accepted flag")
	}
}

func TestQuotation_ItemsReturnsCopy(t *testing.T) {
	item, err := NewQuotationItem("Compressor", decimal.NewFromInt(500), 1)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	q, err := NewQuotation(1, "", []QuotationItem{item})
	if err != nil {
		t.Fatalf("NewQuotation() error = %v", err)
	}

	items := q.Items()
	items[0] = QuotationItem{}
	if !q.TotalAmount().Equal(decimal.NewFromInt(500)) {
		t.Error("mutating the returned items slice changed the quotation")
	}
}
