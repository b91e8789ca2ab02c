package ports

import (
	"context"
	"time"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// CreateRecordInput carries a new consultation entry.
type CreateRecordInput struct {
	PetID          string
	VeterinarianID string
	Date           time.Time
	Reason         string
	Diagnosis      string
	Treatment      string
}

// RecordRepository persists medical records.
type RecordRepository interface {
	Insert(ctx context.Context, input CreateRecordInput) (*domain.MedicalRecord, error)
	// FindByPetID lists a pet's history newest first, with the recording
	// veterinarian's email joined in.
	FindByPetID(ctx context.Context, petID string) ([]domain.MedicalRecordWithVet, error)
	FindByID(ctx context.Context, id string) (*domain.MedicalRecordWithVet, error)
}
