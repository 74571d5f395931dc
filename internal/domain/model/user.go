package model

import "time"

// Role describes what a user is allowed to do on the marketplace.
type Role string

const (
	RoleBuyer     Role = "buyer"
	RoleSeller    Role = "seller"
	RoleInspector Role = "inspector"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleInspector, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered marketplace participant. Country is the
// ISO 3166-1 alpha-2 code from the user's trade profile.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         Role
	Country      string
	CreatedAt    time.Time
}
