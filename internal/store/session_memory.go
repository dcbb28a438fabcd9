package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-employee-registry/models"
)

// memorySessionStore keeps the session in process memory. It backs tests and
// the "memory://" DSN.
type memorySessionStore struct {
	mu      sync.RWMutex
	session *models.Session
}

// NewMemorySessionStore returns an empty in-memory [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

func (s *memorySessionStore) Get(_ context.Context) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return models.Session{}, ErrSessionNotFound
	}
	return *s.session, nil
}

func (s *memorySessionStore) Set(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &session
	return nil
}

func (s *memorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	return nil
}

func (s *memorySessionStore) Close() error {
	return nil
}
