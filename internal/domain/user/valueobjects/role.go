package valueobjects

import (
	"fmt"

	"klevant/internal/shared/authorization"
)

// Role is the explicit role stored on a user record.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleCustomer   Role = "customer"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleTechnician || r == RoleCustomer
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsTechnician() bool {
	return r == RoleTechnician
}

// AuthorizationRole converts the domain role to the shared authorization
// role used by the HTTP layer.
func (r Role) AuthorizationRole() authorization.UserRole {
	return authorization.UserRole(r)
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
