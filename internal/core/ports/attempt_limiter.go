package ports

import "context"

// AttemptLimiter throttles repeated failed logins per email. Implementations
// are best-effort: callers treat any error as "not limited" rather than
// failing the login path.
type AttemptLimiter interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
