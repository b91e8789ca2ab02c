package domain

import "time"

// Audit actions and outcomes recorded for authentication traffic.
const (
	AuditActionRegister = "register"
	AuditActionLogin    = "login"

	AuditOutcomeSuccess = "success"
	AuditOutcomeFailure = "failure"
)

// AuthEvent is a single audit trail entry. Events are recorded best-effort
// and asynchronously; they never influence an auth verdict.
type AuthEvent struct {
	ID        string    `json:"id,omitempty"`
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
