package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// RegisterInput carries the self-registration form fields. All fields are
// required; the handler validates presence before calling the service.
type RegisterInput struct {
	Name            string
	PaternalSurname string
	MaternalSurname string
	Street          string
	Neighborhood    string
	City            string
	ZipCode         string
	Phone           string
	Email           string
	Password        string
}

// AuthService authenticates principals and registers new users.
type AuthService interface {
	// EmailExists reports whether a user already registered with this correo.
	// It intentionally checks usuarios only: an admin's email stays available
	// for user self-registration.
	EmailExists(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login resolves credentials to a role-tagged session identity. Failures
	// are uniform: callers cannot tell a missing account from a bad password.
	Login(ctx context.Context, email, password string) (*domain.SessionIdentity, error)
}
