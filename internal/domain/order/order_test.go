package order

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewOrder(t *testing.T) {
	items := []OrderItem{{ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(100)}}

	if _, err := NewOrder(0, items); err == nil {
		t.Error("NewOrder with zero customer ID error = nil, want error")
	}
	if _, err := NewOrder(1, nil); err == nil {
		t.Error("NewOrder without items error = nil, want error")
	}

	o, err := NewOrder(1, items)
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}
	if o.Status != StatusPending {
		t.Errorf("new order status = %v, want %v", o.Status, StatusPending)
	}
}

func TestOrder_TotalAmount(t *testing.T) {
	o, err := NewOrder(1, []OrderItem{
		{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("99.99")},
		{ProductID: 2, Quantity: 1, Price: decimal.NewFromInt(50)},
	})
	if err != nil {
		t.Fatalf("NewOrder() error = %v", err)
	}
	if !o.TotalAmount().Equal(decimal.RequireFromString("249.98")) {
		t.Errorf("TotalAmount() = %v, want 249.98", o.TotalAmount())
	}
}

func TestOrder_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"processing", StatusProcessing, false},
		{"delivered", StatusDelivered, true},
		{"cancelled", StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{ID: 1, CustomerID: 1, Status: tt.status}
			err := o.Cancel()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Cancel() from %v error = nil, want error", tt.status)
				}
				if o.Status != tt.status {
					t.Errorf("status changed to %v on failed cancel", o.Status)
				}
				return
			}
			if err != nil {
				t.Errorf("Cancel() error = %v", err)
				return
			}
			if o.Status != StatusCancelled {
				t.Errorf("status = %v, want %v", o.Status, StatusCancelled)
			}
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusProcessing, StatusDelivered, StatusCancelled} {
		if !s.IsValid() {
			t.Errorf("%v.IsValid() = false, want true", s)
		}
	}
	if Status("resolved").IsValid() {
		t.Error(`Status("resolved").IsValid() = true, want false`)
	}
}
