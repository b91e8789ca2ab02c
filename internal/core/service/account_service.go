package service

import (
	"context"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/ports"
)

// AccountService implements the administrator-gated account operations.
type AccountService struct {
	accounts ports.AccountRepository
}

func NewAccountService(accounts ports.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.FindAll(ctx)
}

// Update changes role and/or active on an existing account. Nil fields keep
// their stored value; the password hash is never writable through here.
func (s *AccountService) Update(ctx context.Context, id string, role *string, active *bool) (*domain.Account, error) {
	if role != nil && !domain.ValidRole(*role) {
		return nil, domain.ErrInvalidRole
	}
	return s.accounts.Update(ctx, id, role, active)
}
