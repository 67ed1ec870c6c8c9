// Package memory provides a process-local persistence backend, used by tests
// and ephemeral installs.
package memory

import (
	"context"
	"sync"

	"tqmcore/pkg/domain"
)

// Store keeps every collection payload in a map. Payloads are copied on both
// read and write so callers can never alias the stored bytes.
type Store struct {
	mu      sync.RWMutex
	buckets map[domain.CollectionKey][]byte
}

var _ domain.Store = (*Store)(nil)

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{buckets: make(map[domain.CollectionKey][]byte)}
}

func (s *Store) Load(ctx context.Context, key domain.CollectionKey) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.buckets[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, true, nil
}

func (s *Store) Save(ctx context.Context, key domain.CollectionKey, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	stored := make([]byte, len(payload))
	copy(stored, payload)
	s.mu.Lock()
	s.buckets[key] = stored
	s.mu.Unlock()
	return nil
}

func (s *Store) Close() error { return nil }
