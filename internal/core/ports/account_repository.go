package ports

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// AccountRepository defines the persistence interface for staff accounts.
// The store enforces a unique constraint on email: Insert is the sole
// serialization point for concurrent registrations of the same address and
// must surface the loser as domain.ErrDuplicateAccount.
type AccountRepository interface {
	// FindByEmail returns the account regardless of its active flag, or
	// domain.ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Insert(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
	// Update applies partial-update semantics: nil fields keep their stored
	// value. Returns domain.ErrAccountNotFound when id does not exist.
	Update(ctx context.Context, id string, role *string, active *bool) (*domain.Account, error)
}
