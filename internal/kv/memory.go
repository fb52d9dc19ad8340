package kv

import (
	"context"
	"sync"
)

// MemoryBackend keeps every installation in process memory.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemory() *MemoryBackend {
	return &MemoryBackend{data: make(map[string]map[string]string)}
}

func (b *MemoryBackend) Open(installID string) Store {
	return &memoryStore{backend: b, installID: installID}
}

func (b *MemoryBackend) Close(context.Context) error {
	b.mu.Lock()
	b.data = make(map[string]map[string]string)
	b.mu.Unlock()
	return nil
}

type memoryStore struct {
	backend   *MemoryBackend
	installID string
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	v, ok := s.backend.data[s.installID][key]
	return v, ok, nil
}

func (s *memoryStore) Set(ctx context.Context, key, value string) error {
	return s.Apply(ctx, Mutation{Set: map[string]string{key: value}})
}

func (s *memoryStore) Remove(ctx context.Context, key string) error {
	return s.Apply(ctx, Mutation{Remove: []string{key}})
}

func (s *memoryStore) Apply(_ context.Context, m Mutation) error {
	if err := m.validate(); err != nil {
		return err
	}

	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	space := s.backend.data[s.installID]
	if space == nil {
		space = make(map[string]string)
		s.backend.data[s.installID] = space
	}
	for k, v := range m.Set {
		space[k] = v
	}
	for _, k := range m.Remove {
		delete(space, k)
	}
	if len(space) == 0 {
		delete(s.backend.data, s.installID)
	}
	return nil
}
