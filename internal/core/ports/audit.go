package ports

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

// AuditRepository persists the authentication audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuthEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuthEvent, error)
}

// AuditService consumes auth events off the dispatcher and serves the
// admin-facing listing.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuthEvent, error)
}

// AuditSink is the enqueue side handed to the HTTP layer. Publishing is
// non-blocking and best-effort.
type AuditSink interface {
	Publish(event domain.AuthEvent)
}
