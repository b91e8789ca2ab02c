package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

type stubOwnerRepo struct {
	owners map[string]*domain.Owner
	nextID int
}

func newStubOwnerRepo() *stubOwnerRepo {
	return &stubOwnerRepo{owners: make(map[string]*domain.Owner)}
}

func (r *stubOwnerRepo) Insert(_ context.Context, input ports.OwnerInput) (*domain.Owner, error) {
	r.nextID++
	o := &domain.Owner{
		ID:      "owner-" + strconv.Itoa(r.nextID),
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
	}
	r.owners[o.ID] = o
	return o, nil
}

func (r *stubOwnerRepo) FindAll(_ context.Context) ([]domain.Owner, error) {
	out := make([]domain.Owner, 0, len(r.owners))
	for _, o := range r.owners {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOwnerRepo) FindByID(_ context.Context, id string) (*domain.Owner, error) {
	if o, ok := r.owners[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, domain.ErrOwnerNotFound
}

func (r *stubOwnerRepo) Update(_ context.Context, id string, input ports.OwnerInput) (*domain.Owner, error) {
	o, ok := r.owners[id]
	if !ok {
		return nil, domain.ErrOwnerNotFound
	}
	o.Name, o.Phone, o.Email, o.Address = input.Name, input.Phone, input.Email, input.Address
	clone := *o
	return &clone, nil
}

func (r *stubOwnerRepo) Search(_ context.Context, _ string, _ int) ([]domain.Owner, error) {
	return r.FindAll(context.Background())
}

type stubPetRepo struct {
	pets   map[string]*domain.Pet
	nextID int
}

func newStubPetRepo() *stubPetRepo {
	return &stubPetRepo{pets: make(map[string]*domain.Pet)}
}

func (r *stubPetRepo) Insert(_ context.Context, input ports.CreatePetInput) (*domain.Pet, error) {
	r.nextID++
	p := &domain.Pet{
		ID:            "pet-" + strconv.Itoa(r.nextID),
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		Species:       input.Species,
		Breed:         input.Breed,
		BirthDate:     input.BirthDate,
		InitialWeight: input.InitialWeight,
		PhotoURL:      input.PhotoURL,
		Active:        true,
	}
	r.pets[p.ID] = p
	return p, nil
}

func (r *stubPetRepo) FindByID(_ context.Context, id string) (*domain.PetWithOwner, error) {
	if p, ok := r.pets[id]; ok {
		return &domain.PetWithOwner{Pet: *p}, nil
	}
	return nil, domain.ErrPetNotFound
}

func (r *stubPetRepo) Update(_ context.Context, id string, input ports.UpdatePetInput) (*domain.Pet, error) {
	p, ok := r.pets[id]
	if !ok {
		return nil, domain.ErrPetNotFound
	}
	if input.OwnerID != nil {
		p.OwnerID = *input.OwnerID
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Species != nil {
		p.Species = *input.Species
	}
	if input.Active != nil {
		p.Active = *input.Active
	}
	clone := *p
	return &clone, nil
}

func (r *stubPetRepo) collect(filter func(*domain.Pet) bool) []domain.PetWithOwner {
	var out []domain.PetWithOwner
	for _, p := range r.pets {
		if filter(p) {
			out = append(out, domain.PetWithOwner{Pet: *p})
		}
	}
	return out
}

func (r *stubPetRepo) SearchActive(_ context.Context, _ string) ([]domain.PetWithOwner, error) {
	return r.collect(func(p *domain.Pet) bool { return p.Active }), nil
}

func (r *stubPetRepo) FindByOwnerID(_ context.Context, ownerID string) ([]domain.PetWithOwner, error) {
	return r.collect(func(p *domain.Pet) bool { return p.OwnerID == ownerID }), nil
}

func (r *stubPetRepo) FindInactive(_ context.Context) ([]domain.PetWithOwner, error) {
	return r.collect(func(p *domain.Pet) bool { return !p.Active }), nil
}

func (r *stubPetRepo) FindAllIncludingInactive(_ context.Context) ([]domain.PetWithOwner, error) {
	return r.collect(func(*domain.Pet) bool { return true }), nil
}

func (r *stubPetRepo) SetActive(_ context.Context, id string, active bool) (*domain.Pet, error) {
	return r.Update(context.Background(), id, ports.UpdatePetInput{Active: &active})
}

type stubRecordRepo struct {
	records map[string][]domain.MedicalRecordWithVet
	nextID  int
}

func newStubRecordRepo() *stubRecordRepo {
	return &stubRecordRepo{records: make(map[string][]domain.MedicalRecordWithVet)}
}

func (r *stubRecordRepo) Insert(_ context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error) {
	r.nextID++
	rec := domain.MedicalRecord{
		ID:             "rec-" + strconv.Itoa(r.nextID),
		PetID:          input.PetID,
		VeterinarianID: input.VeterinarianID,
		Date:           input.Date,
		Reason:         input.Reason,
		Diagnosis:      input.Diagnosis,
		Treatment:      input.Treatment,
	}
	r.records[input.PetID] = append(r.records[input.PetID], domain.MedicalRecordWithVet{MedicalRecord: rec})
	return &rec, nil
}

func (r *stubRecordRepo) FindByPetID(_ context.Context, petID string) ([]domain.MedicalRecordWithVet, error) {
	return r.records[petID], nil
}

func (r *stubRecordRepo) FindByID(_ context.Context, id string) (*domain.MedicalRecordWithVet, error) {
	for _, list := range r.records {
		for _, rec := range list {
			if rec.ID == id {
				return &rec, nil
			}
		}
	}
	return nil, domain.ErrRecordNotFound
}

func newTestPetService(t *testing.T) (*PetService, *stubPetRepo, *stubOwnerRepo, *stubRecordRepo) {
	t.Helper()
	pets := newStubPetRepo()
	owners := newStubOwnerRepo()
	records := newStubRecordRepo()
	return NewPetService(pets, owners, records), pets, owners, records
}

func TestPetService_Create_UnknownOwner(t *testing.T) {
	svc, _, _, _ := newTestPetService(t)

	_, err := svc.Create(context.Background(), ports.CreatePetInput{OwnerID: "missing", Name: "Firulais"})
	if !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestPetService_DeactivateAndRestore(t *testing.T) {
	svc, _, owners, _ := newTestPetService(t)
	owner, _ := owners.Insert(context.Background(), ports.OwnerInput{Name: "Maria", Email: "maria@mail.test"})

	pet, err := svc.Create(context.Background(), ports.CreatePetInput{OwnerID: owner.ID, Name: "Firulais", Species: "dog"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}
	if !pet.Active {
		t.Fatalf("expected new pet to be active")
	}

	// Logical delete moves the pet to the historical roster.
	retired, err := svc.SetActive(context.Background(), pet.ID, false)
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if retired.Active {
		t.Fatalf("expected pet to be inactive")
	}

	active, err := svc.ListActive(context.Background(), "")
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active pets, got %d", len(active))
	}

	inactive, err := svc.ListInactive(context.Background())
	if err != nil {
		t.Fatalf("list inactive: %v", err)
	}
	if len(inactive) != 1 || inactive[0].ID != pet.ID {
		t.Fatalf("expected retired pet in inactive listing, got %+v", inactive)
	}

	// A retired pet stays retrievable by id.
	if _, err := svc.Get(context.Background(), pet.ID); err != nil {
		t.Fatalf("get retired pet: %v", err)
	}

	// Restore flips it back.
	restored, err := svc.SetActive(context.Background(), pet.ID, true)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !restored.Active {
		t.Fatalf("expected pet to be active after restore")
	}
}

func TestPetService_ListByOwner(t *testing.T) {
	svc, _, owners, _ := newTestPetService(t)
	owner, _ := owners.Insert(context.Background(), ports.OwnerInput{Name: "Maria"})
	other, _ := owners.Insert(context.Background(), ports.OwnerInput{Name: "Jose"})

	if _, err := svc.Create(context.Background(), ports.CreatePetInput{OwnerID: owner.ID, Name: "Michi"}); err != nil {
		t.Fatalf("create pet: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreatePetInput{OwnerID: other.ID, Name: "Rocky"}); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	pets, err := svc.ListByOwner(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(pets) != 1 || pets[0].Name != "Michi" {
		t.Fatalf("unexpected pets: %+v", pets)
	}

	if _, err := svc.ListByOwner(context.Background(), "owner-ghost"); !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestPetService_Get_IncludesHistory(t *testing.T) {
	svc, _, owners, records := newTestPetService(t)
	owner, _ := owners.Insert(context.Background(), ports.OwnerInput{Name: "Maria"})
	pet, err := svc.Create(context.Background(), ports.CreatePetInput{OwnerID: owner.ID, Name: "Michi", Species: "cat"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}
	if _, err := records.Insert(context.Background(), ports.CreateRecordInput{PetID: pet.ID, Diagnosis: "otitis"}); err != nil {
		t.Fatalf("insert record: %v", err)
	}

	detail, err := svc.Get(context.Background(), pet.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.Name != "Michi" {
		t.Fatalf("unexpected pet: %+v", detail.Pet)
	}
	if len(detail.Records) != 1 || detail.Records[0].Diagnosis != "otitis" {
		t.Fatalf("unexpected history: %+v", detail.Records)
	}
}

func TestPetService_Update_RejectsUnknownOwner(t *testing.T) {
	svc, _, owners, _ := newTestPetService(t)
	owner, _ := owners.Insert(context.Background(), ports.OwnerInput{Name: "Maria"})
	pet, err := svc.Create(context.Background(), ports.CreatePetInput{OwnerID: owner.ID, Name: "Michi"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	ghost := "owner-ghost"
	if _, err := svc.Update(context.Background(), pet.ID, ports.UpdatePetInput{OwnerID: &ghost}); !errors.Is(err, domain.ErrOwnerNotFound) {
		t.Fatalf("expected ErrOwnerNotFound, got %v", err)
	}
}

func TestRecordService_Create(t *testing.T) {
	pets := newStubPetRepo()
	owners := newStubOwnerRepo()
	records := newStubRecordRepo()
	petSvc := NewPetService(pets, owners, records)
	svc := NewRecordService(records, pets)

	owner, _ := owners.Insert(context.Background(), ports.OwnerInput{Name: "Maria"})
	pet, err := petSvc.Create(context.Background(), ports.CreatePetInput{OwnerID: owner.ID, Name: "Michi"})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}

	rec, err := svc.Create(context.Background(), ports.CreateRecordInput{
		PetID:          pet.ID,
		VeterinarianID: "acc-1",
		Diagnosis:      "otitis",
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}
	if rec.Date.IsZero() {
		t.Fatalf("expected zero date to default to now")
	}

	if _, err := svc.Create(context.Background(), ports.CreateRecordInput{PetID: "missing"}); !errors.Is(err, domain.ErrPetNotFound) {
		t.Fatalf("expected ErrPetNotFound, got %v", err)
	}
}
