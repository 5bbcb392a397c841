package user

import (
	"testing"

	vo "klevant/internal/domain/user/valueobjects"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		hash     string
		role     vo.Role
		wantErr  bool
	}{
		{"valid admin", "Admin", "admin@example.com", "hash", vo.RoleAdmin, false},
		{"valid customer", "Asha", "asha@example.com", "hash", vo.RoleCustomer, false},
		{"missing name", "", "a@example.com", "hash", vo.RoleAdmin, true},
		{"missing email", "Admin", "", "hash", vo.RoleAdmin, true},
		{"missing hash", "Admin", "a@example.com", "", vo.RoleAdmin, true},
		{"invalid role", "Admin", "a@example.com", "hash", vo.Role("root"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.userName, tt.email, tt.hash, tt.role)
			if tt.wantErr {
				if err == nil {
					t.Error("NewUser() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewUser() error = %v", err)
			}
			if !u.IsActive() {
				t.Error("new user should be active")
			}
		})
	}
}

func TestNewTechnician(t *testing.T) {
	u, err := NewTechnician("Ravi", "ravi@example.com", "hash", "9876543210", "Kochi")
	if err != nil {
		t.Fatalf("NewTechnician() error = %v", err)
	}
	if !u.IsTechnician() {
		t.Error("IsTechnician() = false, want true")
	}
	if u.IsAdmin() {
		t.Error("IsAdmin() = true, want false")
	}
	if u.Mobile() != "9876543210" {
		t.Errorf("Mobile() = %q", u.Mobile())
	}
}

func TestUser_UpdateProfile(t *testing.T) {
	u, err := NewUser("Asha", "asha@example.com", "hash", vo.RoleCustomer)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}

	if err := u.UpdateProfile("", "new@example.com"); err == nil {
		t.Error("UpdateProfile with empty name error = nil, want error")
	}
	if err := u.UpdateProfile("Asha M", ""); err == nil {
		t.Error("UpdateProfile with empty email error = nil, want error")
	}
	if err := u.UpdateProfile("Asha M", "new@example.com"); err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if u.Name() != "Asha M" || u.Email() != "new@example.com" {
		t.Errorf("profile = %q %q after update", u.Name(), u.Email())
	}
}

func TestUser_ChangePasswordAndDeactivate(t *testing.T) {
	u, err := NewUser("Asha", "asha@example.com", "hash", vo.RoleCustomer)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}

	if err := u.ChangePassword(""); err == nil {
		t.Error("ChangePassword(\"\") error = nil, want error")
	}
	if err := u.ChangePassword("newhash"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}
	if u.PasswordHash() != "newhash" {
		t.Errorf("PasswordHash() = %q", u.PasswordHash())
	}

	u.Deactivate()
	if u.IsActive() {
		t.Error("IsActive() = true after Deactivate()")
	}
}
