package service

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

const ownerSearchLimit = 10

// OwnerService implements the owner directory operations.
type OwnerService struct {
	owners ports.OwnerRepository
}

func NewOwnerService(owners ports.OwnerRepository) *OwnerService {
	return &OwnerService{owners: owners}
}

func (s *OwnerService) Create(ctx context.Context, input ports.OwnerInput) (*domain.Owner, error) {
	return s.owners.Insert(ctx, input)
}

// List returns every owner, or a capped substring search when searchTerm is
// non-empty.
func (s *OwnerService) List(ctx context.Context, searchTerm string) ([]domain.Owner, error) {
	if searchTerm != "" {
		return s.owners.Search(ctx, searchTerm, ownerSearchLimit)
	}
	return s.owners.FindAll(ctx)
}

func (s *OwnerService) Get(ctx context.Context, id string) (*domain.Owner, error) {
	return s.owners.FindByID(ctx, id)
}

func (s *OwnerService) Update(ctx context.Context, id string, input ports.OwnerInput) (*domain.Owner, error) {
	return s.owners.Update(ctx, id, input)
}
