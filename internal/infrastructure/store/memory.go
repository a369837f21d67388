package store

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// MemoryStore is a map-backed Store for tests and ephemeral sessions.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[key]
	if !ok {
		return nil, errors.Wrapf(ErrKeyNotFound, "key %s", key)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, data []byte) error {
	if key == "" {
		return errors.New("snapshot key is required")
	}

	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	s.blobs[key] = stored
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.blobs, key)
	s.mu.Unlock()
	return nil
}
