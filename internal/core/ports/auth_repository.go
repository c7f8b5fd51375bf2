package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// UserListFilter carries parameters for the admin user listing.
type UserListFilter struct {
	// OrderByName sorts results by nombre ascending when true.
	OrderByName bool
}

// UserProfileUpdate carries the editable profile fields. The password hash
// and activo flag change through dedicated operations only.
type UserProfileUpdate struct {
	Name            string
	PaternalSurname string
	MaternalSurname string
	Address         domain.Address
	Phone           string
	Email           string
}

// UserRepository defines persistence for the usuarios collection.
type UserRepository interface {
	// Create inserts the user and returns it with the store-assigned ID.
	// A duplicate correo yields domain.ErrEmailTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail looks up a single user by correo (limit 1).
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserListFilter) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update UserProfileUpdate) error
	SetActive(ctx context.Context, id string, active bool) error
}

// AdminRepository defines persistence for the administradores collection.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	Count(ctx context.Context) (int64, error)
}
