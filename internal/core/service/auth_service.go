package service

import (
	"context"
	"errors"
	"time"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// Session lifetimes. The asymmetry is deliberate: the register-flow token is
// a short-lived convenience, the login-flow token is the normal session.
const (
	registerTokenTTL = time.Hour
	loginTokenTTL    = 24 * time.Hour
)

// AuthService implements registration and login on top of the credential
// store, the password hasher and the token issuer.
type AuthService struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	limiter  ports.AttemptLimiter // optional
}

func NewAuthService(accounts ports.AccountRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, limiter ports.AttemptLimiter) *AuthService {
	return &AuthService{accounts: accounts, hasher: hasher, tokens: tokens, limiter: limiter}
}

// Register creates an account and returns a 1h token plus the public view.
// A Weak password is rejected with its unmet-rule notes. Duplicate emails
// are rejected whether the existing row is active or not; under a
// concurrent race the store's unique index decides and the loser still
// surfaces as ErrDuplicateAccount.
func (s *AuthService) Register(ctx context.Context, email, password, role string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleVeterinarian
	}
	if !domain.ValidRole(role) {
		return "", nil, domain.ErrInvalidRole
	}

	if strength := domain.CheckPasswordStrength(password); strength.Level == domain.StrengthWeak {
		return "", nil, &domain.WeakPasswordError{Notes: strength.Notes}
	}

	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrDuplicateAccount
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := s.accounts.Insert(ctx, &domain.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role, registerTokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login authenticates by email and password and returns a 24h token.
// Unknown email, a soft-disabled account and a wrong password all yield
// the identical ErrInvalidCredentials so callers cannot probe for account
// existence or status.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		// Best-effort throttle: a limiter error never blocks the login path.
		if limited, err := s.limiter.TooManyFailures(ctx, email); err == nil && limited {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !account.Active || !s.hasher.Verify(password, account.PasswordHash) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Role, loginTokenTTL)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, email)
	}
	return token, account, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter != nil {
		_ = s.limiter.RecordFailure(ctx, email)
	}
}
