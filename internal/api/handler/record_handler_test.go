package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/api/middleware"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

type stubRecordService struct {
	createFn func(ctx context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error)
}

func (s *stubRecordService) Create(ctx context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error) {
	return s.createFn(ctx, input)
}

func (s *stubRecordService) ListByPet(context.Context, string) ([]domain.MedicalRecordWithVet, error) {
	return nil, nil
}

func (s *stubRecordService) Get(context.Context, string) (*domain.MedicalRecordWithVet, error) {
	return nil, nil
}

func TestRecordHandler_Create_UsesSessionIdentity(t *testing.T) {
	stub := &stubRecordService{
		createFn: func(_ context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error) {
			// The author must come from the session, not the body.
			if input.VeterinarianID != "acc-7" {
				t.Fatalf("unexpected veterinarian id: %s", input.VeterinarianID)
			}
			if input.Date.Format("2006-01-02") != "2026-03-15" {
				t.Fatalf("unexpected date: %v", input.Date)
			}
			return &domain.MedicalRecord{ID: "rec-1", PetID: input.PetID, VeterinarianID: input.VeterinarianID}, nil
		},
	}
	h := NewRecordHandler(stub)

	body := `{"pet_id":"pet-1","date":"2026-03-15","diagnosis":"otitis","veterinarian_id":"acc-999"}`
	c, rec := newPetContext(t, http.MethodPost, "/api/records", body)
	c.Set(middleware.ContextSubject, "acc-7")
	c.Set(middleware.ContextRole, domain.RoleVeterinarian)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRecordHandler_Create_NoIdentity(t *testing.T) {
	h := NewRecordHandler(&stubRecordService{})

	c, rec := newPetContext(t, http.MethodPost, "/api/records", `{"pet_id":"pet-1","diagnosis":"otitis"}`)
	if err := h.Create(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
