package service

import (
	"context"
	"testing"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

type stubAuditRepo struct {
	inserted   []domain.AuthEvent
	lastLimit  int
	listResult []domain.AuthEvent
}

func (r *stubAuditRepo) Insert(_ context.Context, event domain.AuthEvent) error {
	r.inserted = append(r.inserted, event)
	return nil
}

func (r *stubAuditRepo) ListRecent(_ context.Context, limit int) ([]domain.AuthEvent, error) {
	r.lastLimit = limit
	return r.listResult, nil
}

func TestAuditTrailService_ListRecent_ClampsLimit(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditTrailService(repo)

	cases := []struct {
		in   int
		want int
	}{
		{0, defaultAuditListLimit},
		{-5, defaultAuditListLimit},
		{50, 50},
		{1000, defaultAuditListLimit},
	}

	for _, tc := range cases {
		if _, err := svc.ListRecent(context.Background(), tc.in); err != nil {
			t.Fatalf("ListRecent(%d): %v", tc.in, err)
		}
		if repo.lastLimit != tc.want {
			t.Fatalf("ListRecent(%d): repo saw limit %d, want %d", tc.in, repo.lastLimit, tc.want)
		}
	}
}

func TestAuditTrailService_Record(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditTrailService(repo)

	event := domain.AuthEvent{Email: "alice@clinic.test", Action: domain.AuditActionRegister, Outcome: domain.AuditOutcomeSuccess}
	if err := svc.Record(context.Background(), event); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Email != "alice@clinic.test" {
		t.Fatalf("unexpected inserted events: %+v", repo.inserted)
	}
}
