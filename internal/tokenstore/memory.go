package tokenstore

import (
	"context"
	"sync"
)

// MemoryStore holds the pair in process memory. Used in tests and as a
// last-resort backend when neither keychain nor file store is available.
type MemoryStore struct {
	mu      sync.RWMutex
	access  string
	refresh string

	// FailSave, when set, makes the next Save fail. Lets tests exercise
	// the verify atomicity path.
	FailSave error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Access(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access, nil
}

func (s *MemoryStore) Refresh(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh, nil
}

func (s *MemoryStore) Save(_ context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave != nil {
		err := s.FailSave
		s.FailSave = nil
		return err
	}
	s.access = access
	s.refresh = refresh
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	return nil
}
