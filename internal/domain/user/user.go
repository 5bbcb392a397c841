// Package user defines the user aggregate. Administrators, technicians and
// customers share the same record; the role field is the capability switch.
package user

import (
	"fmt"
	"time"

	vo "klevant/internal/domain/user/valueobjects"
)

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         vo.Role
	mobile       string
	address      string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role vo.Role) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewTechnician creates a technician account with contact details.
func NewTechnician(name, email, passwordHash, mobile, address string) (*User, error) {
	u, err := NewUser(name, email, passwordHash, vo.RoleTechnician)
	if err != nil {
		return nil, err
	}
	u.mobile = mobile
	u.address = address
	return u, nil
}

func ReconstructUser(
	id uint,
	name, email, passwordHash string,
	role vo.Role,
	mobile, address string,
	active bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		mobile:       mobile,
		address:      address,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() vo.Role        { return u.role }
func (u *User) Mobile() string       { return u.mobile }
func (u *User) Address() string      { return u.address }
func (u *User) IsActive() bool       { return u.active }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsTechnician reports whether the user can be assigned to tickets.
func (u *User) IsTechnician() bool {
	return u.role.IsTechnician()
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) UpdateProfile(name, email string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(email) == 0 {
		return fmt.Errorf("email is required")
	}
	u.name = name
	u.email = email
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePassword(newHash string) error {
	if len(newHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = newHash
	u.updatedAt = time.Now()
	return nil
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now()
}
