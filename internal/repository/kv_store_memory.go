package repository

import (
	"context"
	"sync"
)

type memoryKVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryKVStore() KVStore {
	return &memoryKVStore{
		entries: make(map[string]string),
	}
}

func (s *memoryKVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *memoryKVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok, nil
}
