package domain

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, disabled account and wrong
	// password alike. The conflation is deliberate: callers must not be able
	// to tell which case they hit.
	ErrInvalidCredentials = errors.New("invalid credentials or inactive account")

	ErrDuplicateAccount = errors.New("email already registered")
	ErrInvalidRole      = errors.New("unknown role")
	ErrAccountNotFound  = errors.New("account not found")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrForbidden        = errors.New("administrator role required")
	ErrTooManyAttempts  = errors.New("too many failed login attempts")

	ErrOwnerNotFound  = errors.New("owner not found")
	ErrPetNotFound    = errors.New("pet not found")
	ErrRecordNotFound = errors.New("medical record not found")
)

// WeakPasswordError rejects a registration whose password scored Weak.
// Notes lists the composition rules the candidate failed.
type WeakPasswordError struct {
	Notes []string
}

func (e *WeakPasswordError) Error() string { return "password is too weak" }
