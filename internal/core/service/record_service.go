package service

import (
	"context"
	"time"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// RecordService implements medical record entries.
type RecordService struct {
	records ports.RecordRepository
	pets    ports.PetRepository
}

func NewRecordService(records ports.RecordRepository, pets ports.PetRepository) *RecordService {
	return &RecordService{records: records, pets: pets}
}

// Create appends a consultation entry to an existing pet's history. The
// authoring veterinarian comes from the verified session identity, never
// from the request body.
func (s *RecordService) Create(ctx context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error) {
	if _, err := s.pets.FindByID(ctx, input.PetID); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}
	return s.records.Insert(ctx, input)
}

func (s *RecordService) ListByPet(ctx context.Context, petID string) ([]domain.MedicalRecordWithVet, error) {
	return s.records.FindByPetID(ctx, petID)
}

func (s *RecordService) Get(ctx context.Context, id string) (*domain.MedicalRecordWithVet, error) {
	return s.records.FindByID(ctx, id)
}
