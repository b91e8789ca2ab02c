package service

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

const defaultAuditListLimit = 100

// AuditTrailService persists auth events handed off by the dispatcher and
// serves the admin-facing listing.
type AuditTrailService struct {
	repo ports.AuditRepository
}

func NewAuditTrailService(repo ports.AuditRepository) *AuditTrailService {
	return &AuditTrailService{repo: repo}
}

func (s *AuditTrailService) Record(ctx context.Context, event domain.AuthEvent) error {
	return s.repo.Insert(ctx, event)
}

func (s *AuditTrailService) ListRecent(ctx context.Context, limit int) ([]domain.AuthEvent, error) {
	if limit <= 0 || limit > defaultAuditListLimit {
		limit = defaultAuditListLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
