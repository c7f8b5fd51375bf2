package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// AccountService covers the admin-side user management surface: listing
// accounts, editing profiles, and toggling the activo flag. Accounts are
// never hard-deleted.
type AccountService interface {
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, update UserProfileUpdate) (*domain.User, error)
	SetUserActive(ctx context.Context, id string, active bool) (*domain.User, error)
}
