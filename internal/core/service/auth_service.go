package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// principalSource is one entry in the ordered login lookup chain. It resolves
// an email to a stored hash plus the identity to issue when the hash verifies.
type principalSource struct {
	role   domain.Role
	lookup func(ctx context.Context, email string) (domain.SessionIdentity, string, error)
}

// AuthService implements registration and the cross-collection login.
type AuthService struct {
	users   ports.UserRepository
	admins  ports.AdminRepository
	hasher  ports.PasswordHasher
	sources []principalSource
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, admins ports.AdminRepository, hasher ports.PasswordHasher, log zerolog.Logger) *AuthService {
	s := &AuthService{users: users, admins: admins, hasher: hasher, log: log}

	// Lookup precedence is this slice's order: usuarios always wins over
	// administradores, so an email present in both collections resolves to
	// the user role.
	s.sources = []principalSource{
		{role: domain.RoleUser, lookup: s.lookupUser},
		{role: domain.RoleAdmin, lookup: s.lookupAdmin},
	}
	return s
}

// EmailExists reports whether a user already registered with this correo.
// Administradores is deliberately not consulted.
func (s *AuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Register hashes the password and stores a new active user. Callers check
// EmailExists first for a friendly duplicate message; the unique index on
// correo is the backstop when two registrations race (ErrEmailTaken).
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:            input.Name,
		PaternalSurname: input.PaternalSurname,
		MaternalSurname: input.MaternalSurname,
		Address: domain.Address{
			Street:       input.Street,
			Neighborhood: input.Neighborhood,
			City:         input.City,
			ZipCode:      input.ZipCode,
		},
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login walks the principal sources in order. The first source holding an
// account for the email decides the outcome: a verified password yields that
// source's role, anything else is a uniform credential failure. Callers never
// learn which collection was tried.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.SessionIdentity, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	for _, src := range s.sources {
		identity, hash, err := src.lookup(ctx, email)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		if !s.hasher.Verify(password, hash) {
			s.log.Debug().Str("role", string(src.role)).Msg("password mismatch on login")
			return nil, domain.ErrInvalidCredentials
		}
		return &identity, nil
	}

	return nil, domain.ErrInvalidCredentials
}

func (s *AuthService) lookupUser(ctx context.Context, email string) (domain.SessionIdentity, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return domain.SessionIdentity{}, "", err
	}
	return domain.IdentityFromUser(u), u.PasswordHash, nil
}

func (s *AuthService) lookupAdmin(ctx context.Context, email string) (domain.SessionIdentity, string, error) {
	a, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		return domain.SessionIdentity{}, "", err
	}
	return domain.IdentityFromAdmin(a), a.PasswordHash, nil
}

// EnsureAdmin seeds a single administrator when the administradores
// collection is empty, so a fresh deployment has a working admin login.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	n, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if _, err := s.admins.Create(ctx, &domain.Admin{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		return err
	}

	s.log.Info().Str("correo", email).Msg("seeded bootstrap administrator")
	return nil
}
