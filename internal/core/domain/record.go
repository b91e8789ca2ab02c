package domain

import "time"

// MedicalRecord is one consultation entry in a pet's history.
type MedicalRecord struct {
	ID             string    `json:"id"`
	PetID          string    `json:"pet_id"`
	VeterinarianID string    `json:"veterinarian_id"`
	Date           time.Time `json:"date"`
	Reason         string    `json:"reason,omitempty"`
	Diagnosis      string    `json:"diagnosis"`
	Treatment      string    `json:"treatment,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// MedicalRecordWithVet joins in the recording veterinarian's email.
type MedicalRecordWithVet struct {
	MedicalRecord
	VeterinarianEmail string `json:"veterinarian_email,omitempty"`
}
