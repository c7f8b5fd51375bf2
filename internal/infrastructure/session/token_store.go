// Package session provides session-store implementations that do not need
// external infrastructure: a signed-token store and an in-memory store.
package session

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// TokenStore issues stateless HS256-signed tokens carrying the identity.
// Nothing is persisted, so Delete cannot revoke: a logged-out token stays
// valid until its expiry. Deployments that need immediate revocation use the
// Redis store instead.
type TokenStore struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenStore(secret string, ttl time.Duration) *TokenStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenStore{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	Identity domain.SessionIdentity `json:"identity"`
	jwt.RegisteredClaims
}

func (s *TokenStore) Create(_ context.Context, identity domain.SessionIdentity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Identity: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *TokenStore) Get(_ context.Context, token string) (*domain.SessionIdentity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrSessionNotFound
	}
	return &claims.Identity, nil
}

// Delete is a no-op: signed tokens expire, they are not revoked.
func (s *TokenStore) Delete(context.Context, string) error {
	return nil
}
