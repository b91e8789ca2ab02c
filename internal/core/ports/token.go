package ports

import "time"

// Identity is the decoded token payload attached to verified requests.
// Role is a point-in-time snapshot taken at issuance; it is not re-checked
// against the store before the token expires.
type Identity struct {
	Subject string
	Role    string
}

// TokenIssuer mints signed, time-limited bearer tokens.
type TokenIssuer interface {
	Issue(subject, role string, ttl time.Duration) (string, error)
}

// TokenVerifier validates a bearer token and decodes its identity.
// Any failure (bad signature, malformed token, expiry) surfaces as
// domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}
