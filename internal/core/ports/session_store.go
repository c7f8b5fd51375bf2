package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// SessionStore persists session identities for the lifetime of a browser
// session. Tokens are opaque to callers; the store decides whether they are
// handles into server-side state or self-contained signed values.
type SessionStore interface {
	// Create persists the identity and returns the token to set as cookie value.
	Create(ctx context.Context, identity domain.SessionIdentity) (string, error)
	// Get resolves a token back to its identity. Expired or unknown tokens
	// return domain.ErrSessionNotFound.
	Get(ctx context.Context, token string) (*domain.SessionIdentity, error)
	// Delete revokes the session. Stores without revocation return nil.
	Delete(ctx context.Context, token string) error
}
