package inventory

import (
	"testing"
)

func TestNewOutwardAssignment(t *testing.T) {
	tests := []struct {
		name         string
		technicianID uint
		productID    uint
		quantity     int
		wantErr      bool
	}{
		{"valid", 1, 2, 5, false},
		{"missing technician", 0, 2, 5, true},
		{"missing product", 1, 0, 5, true},
		{"zero quantity", 1, 2, 0, true},
		{"negative quantity", 1, 2, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewOutwardAssignment(tt.technicianID, tt.productID, tt.quantity)
			if tt.wantErr {
				if err == nil {
					t.Error("NewOutwardAssignment() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewOutwardAssignment() error = %v", err)
			}
			if a.Status() != AssignmentPending {
				t.Errorf("status = %v, want %v", a.Status(), AssignmentPending)
			}
			if a.PendingQuantity() != tt.quantity {
				t.Errorf("PendingQuantity() = %d, want %d", a.PendingQuantity(), tt.quantity)
			}
		})
	}
}

func TestOutwardAssignment_Return_Partial(t *testing.T) {
	a, err := NewOutwardAssignment(1, 2, 10)
	if err != nil {
		t.Fatalf("NewOutwardAssignment() error = %v", err)
	}

	if err := a.Return(4); err != nil {
		t.Fatalf("Return(4) error = %v", err)
	}
	if a.PendingQuantity() != 6 {
		t.Errorf("PendingQuantity() = %d, want 6", a.PendingQuantity())
	}
	if a.Status() != AssignmentPending {
		t.Errorf("status = %v, want pending after partial return", a.Status())
	}
	if a.ReturnedAt() != nil {
		t.Error("ReturnedAt() set after partial return")
	}
}

func TestOutwardAssignment_Return_Full(t *testing.T) {
	a, err := NewOutwardAssignment(1, 2, 10)
	if err != nil {
		t.Fatalf("NewOutwardAssignment() error = %v", err)
	}

	if err := a.Return(4); err != nil {
		t.Fatalf("Return(4) error = %v", err)
	}
	if err := a.Return(6); err != nil {
		t.Fatalf("Return(6) error = %v", err)
	}
	if a.PendingQuantity() != 0 {
		t.Errorf("PendingQuantity() = %d, want 0", a.PendingQuantity())
	}
	if a.Status() != AssignmentReturned {
		t.Errorf("status = %v, want %v", a.Status(), AssignmentReturned)
	}
	if a.ReturnedAt() == nil {
		t.Error("ReturnedAt() not stamped on full return")
	}
}

func TestOutwardAssignment_Return_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{"zero", 0},
		{"negative", -3},
		{"over pending", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewOutwardAssignment(1, 2, 10)
			if err != nil {
				t.Fatalf("NewOutwardAssignment() error = %v", err)
			}
			if err := a.Return(tt.quantity); err == nil {
				t.Errorf("Return(%d) error = nil, want error", tt.quantity)
			}
			if a.QuantityReturned() != 0 {
				t.Errorf("QuantityReturned() = %d after rejected return, want 0", a.QuantityReturned())
			}
			if a.Status() != AssignmentPending {
				t.Errorf("status = %v after rejected return, want pending", a.Status())
			}
		})
	}
}

func TestOutwardAssignment_Return_OverAfterPartial(t *testing.T) {
	a, err := NewOutwardAssignment(1, 2, 10)
	if err != nil {
		t.Fatalf("NewOutwardAssignment() error = %v", err)
	}
	if err := a.Return(8); err != nil {
		t.Fatalf("Return(8) error = %v", err)
	}
	if err := a.Return(3); err == nil {
		t.Error("Return(3) with 2 pending error = nil, want error")
	}
	if a.QuantityReturned() != 8 {
		t.Errorf("QuantityReturned() = %d, want 8", a.QuantityReturned())
	}
}

func TestReconstructOutwardAssignment(t *testing.T) {
	a, err := NewOutwardAssignment(1, 2, 10)
	if err != nil {
		t.Fatalf("NewOutwardAssignment() error = %v", err)
	}

	if _, err := ReconstructOutwardAssignment(0, 1, 2, 10, 0, AssignmentPending, a.AssignedAt(), nil); err == nil {
		t.Error("ReconstructOutwardAssignment with zero ID error = nil, want error")
	}
	if _, err := ReconstructOutwardAssignment(1, 1, 2, 10, 11, AssignmentPending, a.AssignedAt(), nil); err == nil {
		t.Error("ReconstructOutwardAssignment with returned > assigned error = nil, want error")
	}
}
