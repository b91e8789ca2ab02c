package ports

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// CreatePetInput carries the fields accepted when admitting a new patient.
type CreatePetInput struct {
	OwnerID       string
	Name          string
	Species       string
	Breed         string
	BirthDate     string
	InitialWeight float64
	PhotoURL      string
}

// UpdatePetInput applies partial-update semantics: nil fields keep their
// stored value.
type UpdatePetInput struct {
	OwnerID       *string
	Name          *string
	Species       *string
	Breed         *string
	BirthDate     *string
	InitialWeight *float64
	PhotoURL      *string
	Active        *bool
}

// PetRepository persists clinic patients.
type PetRepository interface {
	Insert(ctx context.Context, input CreatePetInput) (*domain.Pet, error)
	// FindByID returns the pet with its owner joined in, regardless of the
	// active flag.
	FindByID(ctx context.Context, id string) (*domain.PetWithOwner, error)
	Update(ctx context.Context, id string, input UpdatePetInput) (*domain.Pet, error)
	// SearchActive lists active pets, optionally filtered by a
	// case-insensitive substring of the pet or owner name.
	SearchActive(ctx context.Context, term string) ([]domain.PetWithOwner, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]domain.PetWithOwner, error)
	FindInactive(ctx context.Context) ([]domain.PetWithOwner, error)
	FindAllIncludingInactive(ctx context.Context) ([]domain.PetWithOwner, error)
	// SetActive toggles the logical-delete flag (deactivate and restore).
	SetActive(ctx context.Context, id string, active bool) (*domain.Pet, error)
}
