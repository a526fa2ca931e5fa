package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleCompany    = "company"
	RoleProvider   = "provider"
	RoleInactive   = "inactive"
)

// ValidRole reports whether role is one of the enumerated marketplace roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSuperAdmin, RoleCompany, RoleProvider, RoleInactive:
		return true
	}
	return false
}

// User models an actor in the marketplace.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsProvider reports whether the user can act as a service provider.
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// IsCompany reports whether the user can act on behalf of a company.
func (u *User) IsCompany() bool {
	return u.Role == RoleCompany
}

// IsAdmin reports whether the user holds either administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
