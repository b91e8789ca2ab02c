package domain

import "time"

// Pet is a clinic patient. Pets are never physically deleted: Active=false
// moves them to the historical roster and restore flips them back.
type Pet struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Name          string    `json:"name"`
	Species       string    `json:"species"`
	Breed         string    `json:"breed,omitempty"`
	BirthDate     string    `json:"birth_date,omitempty"` // YYYY-MM-DD
	InitialWeight float64   `json:"initial_weight,omitempty"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PetWithOwner decorates a pet with the owner columns the listings join in.
type PetWithOwner struct {
	Pet
	OwnerName  string `json:"owner_name,omitempty"`
	OwnerPhone string `json:"owner_phone,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
}
