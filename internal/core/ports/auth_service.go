package ports

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// AuthService exposes the two public authentication operations.
type AuthService interface {
	// Register creates an account and returns a short-lived (1h) session
	// token alongside the public account view.
	Register(ctx context.Context, email, password, role string) (string, *domain.Account, error)
	// Login verifies credentials and returns a 24h session token.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
