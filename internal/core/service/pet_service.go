package service

import (
	"context"
	"errors"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// PetService implements patient management, including the logical
// delete/restore state toggling.
type PetService struct {
	pets    ports.PetRepository
	owners  ports.OwnerRepository
	records ports.RecordRepository
}

func NewPetService(pets ports.PetRepository, owners ports.OwnerRepository, records ports.RecordRepository) *PetService {
	return &PetService{pets: pets, owners: owners, records: records}
}

// Create admits a new patient. The owner must exist.
func (s *PetService) Create(ctx context.Context, input ports.CreatePetInput) (*domain.Pet, error) {
	if _, err := s.owners.FindByID(ctx, input.OwnerID); err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, err
	}
	return s.pets.Insert(ctx, input)
}

// Get returns the pet with its owner summary and full medical history,
// regardless of the active flag.
func (s *PetService) Get(ctx context.Context, id string) (*ports.PetDetail, error) {
	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	records, err := s.records.FindByPetID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.PetDetail{PetWithOwner: *pet, Records: records}, nil
}

func (s *PetService) Update(ctx context.Context, id string, input ports.UpdatePetInput) (*domain.Pet, error) {
	if input.OwnerID != nil {
		if _, err := s.owners.FindByID(ctx, *input.OwnerID); err != nil {
			return nil, err
		}
	}
	return s.pets.Update(ctx, id, input)
}

func (s *PetService) ListActive(ctx context.Context, searchTerm string) ([]domain.PetWithOwner, error) {
	return s.pets.SearchActive(ctx, searchTerm)
}

// ListByOwner returns an owner's active pets. The owner must exist.
func (s *PetService) ListByOwner(ctx context.Context, ownerID string) ([]domain.PetWithOwner, error) {
	if _, err := s.owners.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.pets.FindByOwnerID(ctx, ownerID)
}

func (s *PetService) ListInactive(ctx context.Context) ([]domain.PetWithOwner, error) {
	return s.pets.FindInactive(ctx)
}

func (s *PetService) ListAll(ctx context.Context) ([]domain.PetWithOwner, error) {
	return s.pets.FindAllIncludingInactive(ctx)
}

// SetActive toggles the logical-delete flag: false retires the patient to
// the historical roster, true restores it.
func (s *PetService) SetActive(ctx context.Context, id string, active bool) (*domain.Pet, error) {
	return s.pets.SetActive(ctx, id, active)
}
