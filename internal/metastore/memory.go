package metastore

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps metadata in process memory.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (Meta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fields, ok := s.docs[id]
	if !ok {
		return Meta{}, ErrNotFound
	}
	return fromFields(fields), nil
}

func (s *MemoryStore) Put(_ context.Context, id string, m Meta) error {
	fields, err := toFields(m)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = maps.Clone(fields)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
