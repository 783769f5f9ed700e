package store

import (
	"context"
	"sync"

	"github.com/spamlens/spamlens/internal/core"
)

// Persisted key layout, shared by every store implementation
const (
	keyAuthenticated = "isAuthenticated"
	keyUserEmail     = "userEmail"
	keyUserName      = "userName"
)

// MemoryStore is an in-memory implementation of the SessionStore interface,
// used by tests and as the fallback when no durable store is configured
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

// Load reads the persisted session; missing keys yield the zero session
func (s *MemoryStore) Load(ctx context.Context) (core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return core.Session{
		Authenticated: s.values[keyAuthenticated] == "true",
		Email:         s.values[keyUserEmail],
		Name:          s.values[keyUserName],
	}, nil
}

// Save persists the session
func (s *MemoryStore) Save(ctx context.Context, session core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.Authenticated {
		s.values[keyAuthenticated] = "true"
	} else {
		delete(s.values, keyAuthenticated)
	}
	s.values[keyUserEmail] = session.Email
	s.values[keyUserName] = session.Name
	return nil
}

// Clear removes all persisted session fields
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, keyAuthenticated)
	delete(s.values, keyUserEmail)
	delete(s.values, keyUserName)
	return nil
}
