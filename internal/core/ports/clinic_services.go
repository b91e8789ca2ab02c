package ports

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// OwnerService covers the administrator-gated owner directory.
type OwnerService interface {
	Create(ctx context.Context, input OwnerInput) (*domain.Owner, error)
	List(ctx context.Context, searchTerm string) ([]domain.Owner, error)
	Get(ctx context.Context, id string) (*domain.Owner, error)
	Update(ctx context.Context, id string, input OwnerInput) (*domain.Owner, error)
}

// PetDetail is a pet with its owner columns and full medical history.
type PetDetail struct {
	domain.PetWithOwner
	Records []domain.MedicalRecordWithVet `json:"records"`
}

// PetService covers patient management, including the logical
// delete/restore toggling.
type PetService interface {
	Create(ctx context.Context, input CreatePetInput) (*domain.Pet, error)
	Get(ctx context.Context, id string) (*PetDetail, error)
	Update(ctx context.Context, id string, input UpdatePetInput) (*domain.Pet, error)
	ListActive(ctx context.Context, searchTerm string) ([]domain.PetWithOwner, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.PetWithOwner, error)
	ListInactive(ctx context.Context) ([]domain.PetWithOwner, error)
	ListAll(ctx context.Context) ([]domain.PetWithOwner, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Pet, error)
}

// RecordService covers medical record entries.
type RecordService interface {
	Create(ctx context.Context, input CreateRecordInput) (*domain.MedicalRecord, error)
	ListByPet(ctx context.Context, petID string) ([]domain.MedicalRecordWithVet, error)
	Get(ctx context.Context, id string) (*domain.MedicalRecordWithVet, error)
}
