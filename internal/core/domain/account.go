package domain

import "time"

const (
	RoleAdministrator = "administrator"
	RoleVeterinarian  = "veterinarian"
)

// ValidRole reports whether role is one of the staff roles the clinic knows.
func ValidRole(role string) bool {
	return role == RoleAdministrator || role == RoleVeterinarian
}

// Account models a staff member able to authenticate against the API.
// Accounts are never physically deleted; Active=false soft-disables them.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
