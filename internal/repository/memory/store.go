package memory

import (
	"context"
	"sync"

	"github.com/mamadbah2/sewmaster/internal/repository"
)

// Store is a process-local BlobStore. It is the default backend and the one
// used in tests.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

// Load returns a copy of the blob saved under key.
func (s *Store) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Save replaces the blob under key.
func (s *Store) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = append([]byte(nil), data...)
	return nil
}
