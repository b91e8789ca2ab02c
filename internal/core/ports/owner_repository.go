package ports

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// OwnerInput carries the writable owner fields.
type OwnerInput struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

// OwnerRepository persists pet owners.
type OwnerRepository interface {
	Insert(ctx context.Context, input OwnerInput) (*domain.Owner, error)
	FindAll(ctx context.Context) ([]domain.Owner, error)
	FindByID(ctx context.Context, id string) (*domain.Owner, error)
	Update(ctx context.Context, id string, input OwnerInput) (*domain.Owner, error)
	// Search matches term as a case-insensitive substring of name, phone
	// or email, capped at limit results.
	Search(ctx context.Context, term string, limit int) ([]domain.Owner, error)
}
