package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures   = 10
	defaultFailureWindow = 15 * time.Minute
)

// LoginLimiter throttles repeated failed logins per email, backed by Redis.
// Key format: loginfail:<email>. The counter expires with the window, so a
// quiet account unlocks by itself. Best-effort by contract: callers treat
// any Redis error as "not limited".
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter wrapping the given Redis client.
// Non-positive knobs fall back to 10 failures over 15 minutes.
func NewLoginLimiter(client *redis.Client, maxFailures int, window time.Duration) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultFailureWindow
	}
	return &LoginLimiter{client: client, maxFailures: int64(maxFailures), window: window}
}

// TooManyFailures reports whether email has exhausted its failure budget.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n >= l.maxFailures, nil
}

// RecordFailure bumps the counter and refreshes the window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)

	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("login limiter record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("loginfail:%s", email)
}
