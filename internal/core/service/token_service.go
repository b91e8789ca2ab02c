package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// secret is injected once at construction; there is no other process state.
// Expiry is strict — no clock-skew leeway on verification.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue mints a token carrying the subject and a point-in-time role
// snapshot. The role is not re-checked against the store until expiry.
func (s *TokenService) Issue(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify decodes a token. Malformed input, a wrong signature and an
// exceeded expiry all collapse into domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (ports.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return ports.Identity{}, domain.ErrInvalidToken
	}

	subject, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if subject == "" || role == "" {
		return ports.Identity{}, domain.ErrInvalidToken
	}

	return ports.Identity{Subject: subject, Role: role}, nil
}
