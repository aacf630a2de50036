// Package memory is the in-process SliceStore used for tests and for running
// without external storage configured.
package memory

import (
	"context"
	"sync"

	"elampillai/storefront/internal/persist"
)

type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func New() *Store {
	return &Store{entries: make(map[string][]byte)}
}

func key(sessionID string, slice persist.Slice) string {
	return sessionID + "/" + string(slice)
}

func (s *Store) Get(_ context.Context, sessionID string, slice persist.Slice) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.entries[key(sessionID, slice)]
	if !ok {
		return nil, persist.ErrNotFound
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (s *Store) Set(_ context.Context, sessionID string, slice persist.Slice, payload []byte) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	s.mu.Lock()
	s.entries[key(sessionID, slice)] = stored
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(_ context.Context, sessionID string, slice persist.Slice) error {
	s.mu.Lock()
	delete(s.entries, key(sessionID, slice))
	s.mu.Unlock()
	return nil
}
