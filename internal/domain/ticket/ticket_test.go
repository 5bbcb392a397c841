package ticket

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	vo "klevant/internal/domain/ticket/valueobjects"
)

func newTestTicket(t *testing.T, status vo.Status) *Ticket {
	t.Helper()
	tk, err := ReconstructTicket(
		1,
		"Asha Menon",
		"9876543210",
		"asha@example.com",
		"12 Beach Road, Kochi",
		vo.ServiceACRepair,
		"AC not cooling",
		status,
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
	return tk
}

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket("Asha Menon", "9876543210", "asha@example.com", "12 Beach Road, Kochi", vo.ServiceACRepair, "AC not cooling")
	if err != nil {
		t.Fatalf("NewTicket() error = %v", err)
	}
	if tk.Status() != vo.StatusPending {
		t.Errorf("new ticket status = %v, want %v", tk.Status(), vo.StatusPending)
	}
	if !tk.AmountPaid().IsZero() {
		t.Errorf("new ticket amount paid = %v, want 0", tk.AmountPaid())
	}
	if tk.TechnicianID() != nil {
		t.Error("new ticket should have no technician")
	}
}

func TestNewTicket_Validation(t *testing.T) {
	longName := make([]byte, 101)
	for i := range longName {
		longName[i] = 'a'
	}

	tests := []struct {
		name        string
		customer    string
		mobile      string
		address     string
		serviceType vo.ServiceType
		description string
	}{
		{"missing name", "", "9876543210", "addr", vo.ServiceACRepair, "desc"},
		{"name too long", string(longName), "9876543210", "addr", vo.ServiceACRepair, "desc"},
		{"missing mobile", "Asha", "", "addr", vo.ServiceACRepair, "desc"},
		{"mobile too long", "Asha", "1234567890123456", "addr", vo.ServiceACRepair, "desc"},
		{"missing address", "Asha", "9876543210", "", vo.ServiceACRepair, "desc"},
		{"invalid service type", "Asha", "9876543210", "addr", vo.ServiceType("bad"), "desc"},
		{"missing description", "Asha", "9876543210", "addr", vo.ServiceACRepair, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.customer, tt.mobile, "", tt.address, tt.serviceType, tt.description)
			if err == nil {
				t.Error("NewTicket() error = nil, want error")
			}
		})
	}
}

func TestTicket_Accept(t *testing.T) {
	tests := []struct {
		name    string
		status  vo.Status
		wantErr bool
	}{
		{"pending", vo.StatusPending, false},
		{"accepted", vo.StatusAccepted, true},
		{"rejected", vo.StatusRejected, true},
		{"in progress", vo.StatusInProgress, true},
		{"resolved", vo.StatusResolved, true},
		{"completed", vo.StatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTicket(t, tt.status)
			err := tk.Accept()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Accept() from %v error = nil, want error", tt.status)
				}
				if tk.Status() != tt.status {
					t.Errorf("status changed to %v on failed accept", tk.Status())
				}
				return
			}
			if err != nil {
				t.Errorf("Accept() error = %v, want nil", err)
				return
			}
			if tk.Status() != vo.StatusAccepted {
				t.Errorf("status = %v, want %v", tk.Status(), vo.StatusAccepted)
			}
		})
	}
}

func TestTicket_Reject(t *testing.T) {
	tests := []struct {
		name    string
		status  vo.Status
		wantErr bool
	}{
		{"pending", vo.StatusPending, false},
		{"accepted", vo.StatusAccepted, true},
		{"rejected", vo.StatusRejected, true},
		{"in progress", vo.StatusInProgress, true},
		{"resolved", vo.StatusResolved, true},
		{"completed", vo.StatusCompleted, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := newTestTicket(t, tt.status)
			err := tk.Reject()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Reject() from %v error = nil, want error", tt.status)
				}
				return
			}
			if err != nil {
				t.Errorf("Reject() error = %v, want nil", err)
				return
			}
			if tk.Status() != vo.StatusRejected {
				t.Errorf("status = %v, want %v", tk.Status(), vo.StatusRejected)
			}
		})
	}
}

func TestTicket_AssignTechnician(t *testing.T) {
	// Assignment has no status guard: re-assignment re-enters in_progress
	// from any state, including resolved.
	for _, status := range vo.AllStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			tk := newTestTicket(t, status)
			if err := tk.AssignTechnician(7); err != nil {
				t.Fatalf("AssignTechnician() error = %v", err)
			}
			if tk.Status() != vo.StatusInProgress {
				t.Errorf("status = %v, want %v", tk.Status(), vo.StatusInProgress)
			}
			if tk.TechnicianID() == nil || *tk.TechnicianID() != 7 {
				t.Errorf("technician ID = %v, want 7", tk.TechnicianID())
			}
		})
	}

	tk := newTestTicket(t, vo.StatusPending)
	if err := tk.AssignTechnician(0); err == nil {
		t.Error("AssignTechnician(0) error = nil, want error")
	}
}

func TestTicket_MarkResolvedAndCompleted(t *testing.T) {
	for _, status := range vo.AllStatuses() {
		tk := newTestTicket(t, status)
		tk.MarkResolved()
		if tk.Status() != vo.StatusResolved {
			t.Errorf("MarkResolved() from %v: status = %v", status, tk.Status())
		}

		tk = newTestTicket(t, status)
		tk.MarkCompleted()
		if tk.Status() != vo.StatusCompleted {
			t.Errorf("MarkCompleted() from %v: status = %v", status, tk.Status())
		}
	}
}

func TestTicket_RecordPayment(t *testing.T) {
	tk := newTestTicket(t, vo.StatusInProgress)

	if err := tk.RecordPayment(decimal.NewFromInt(250)); err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	if err := tk.RecordPayment(decimal.NewFromInt(100)); err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}
	if !tk.AmountPaid().Equal(decimal.NewFromInt(350)) {
		t.Errorf("amount paid = %v, want 350", tk.AmountPaid())
	}

	if err := tk.RecordPayment(decimal.NewFromInt(-10)); err == nil {
		t.Error("RecordPayment(-10) error = nil, want error")
	}
	if !tk.AmountPaid().Equal(decimal.NewFromInt(350)) {
		t.Errorf("amount paid changed to %v on rejected payment", tk.AmountPaid())
	}
}

func TestTicket_TotalAmount(t *testing.T) {
	tk := newTestTicket(t, vo.StatusInProgress)
	if err := tk.RecordPayment(decimal.NewFromInt(200)); err != nil {
		t.Fatalf("RecordPayment() error = %v", err)
	}

	if !tk.TotalAmount(nil).Equal(decimal.NewFromInt(200)) {
		t.Errorf("TotalAmount(nil) = %v, want 200", tk.TotalAmount(nil))
	}

	itemA, err := NewQuotationItem("Compressor", decimal.NewFromInt(500), 1)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	itemB, err := NewQuotationItem("Gas refill", decimal.NewFromInt(150), 2)
	if err != nil {
		t.Fatalf("NewQuotationItem() error = %v", err)
	}
	q, err := NewQuotation(tk.ID(), "", []QuotationItem{itemA, itemB})
	if err != nil {
		t.Fatalf("NewQuotation() error = %v", err)
	}

	// 200 paid + 500 + 2*150 = 1000
	if !tk.TotalAmount(q).Equal(decimal.NewFromInt(1000)) {
		t.Errorf("TotalAmount(q) = %v, want 1000", tk.TotalAmount(q))
	}
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket("Asha", "9876543210", "", "addr", vo.ServiceOther, "desc")
	if err != nil {
		t.Fatalf("NewTicket() error = %v", err)
	}
	if err := tk.SetID(0); err == nil {
		t.Error("SetID(0) error = nil, want error")
	}
	if err := tk.SetID(5); err != nil {
		t.Errorf("SetID(5) error = %v", err)
	}
	if err := tk.SetID(6); err == nil {
		t.Error("SetID on set ID error = nil, want error")
	}
}
