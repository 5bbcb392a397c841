// Package authorization defines the role enumeration and capability checks.
// Roles are explicit values on the user record; there is no group lookup.
package authorization

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleTechnician UserRole = "technician"
	RoleCustomer   UserRole = "customer"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleTechnician || r == RoleCustomer
}

// ParseUserRole parses a role string, defaulting to customer for unknown values.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleCustomer
}
