package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// AccountService implements the admin-side user management surface.
type AccountService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewAccountService(users ports.UserRepository, log zerolog.Logger) *AccountService {
	return &AccountService{users: users, log: log}
}

func (s *AccountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx, ports.UserListFilter{OrderByName: true})
}

func (s *AccountService) UpdateUser(ctx context.Context, id string, update ports.UserProfileUpdate) (*domain.User, error) {
	if err := s.users.UpdateProfile(ctx, id, update); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user profile updated")
	return s.users.FindByID(ctx, id)
}

// SetUserActive toggles the activo flag. Deactivation is the only removal
// this system has; documents are never deleted.
func (s *AccountService) SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	if err := s.users.SetActive(ctx, id, active); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Bool("activo", active).Msg("user state changed")
	return s.users.FindByID(ctx, id)
}
