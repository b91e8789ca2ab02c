package ports

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// AccountService covers the administrator-gated account operations.
type AccountService interface {
	List(ctx context.Context) ([]domain.Account, error)
	// Update changes role and/or active; nil fields are left untouched.
	// Accounts are soft-disabled, never deleted.
	Update(ctx context.Context, id string, role *string, active *bool) (*domain.Account, error)
}
