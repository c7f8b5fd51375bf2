package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// MemoryStore keeps sessions in process memory. Used by tests and local
// development without Redis; sessions vanish on restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	ttl      time.Duration
}

type memorySession struct {
	identity domain.SessionIdentity
	expires  time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{sessions: make(map[string]memorySession), ttl: ttl}
}

func (s *MemoryStore) Create(_ context.Context, identity domain.SessionIdentity) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{identity: identity, expires: time.Now().Add(s.ttl)}
	return token, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*domain.SessionIdentity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if time.Now().After(sess.expires) {
		delete(s.sessions, token)
		return nil, domain.ErrSessionNotFound
	}

	identity := sess.identity
	return &identity, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
