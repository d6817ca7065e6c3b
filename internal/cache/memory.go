package cache

import (
	"sync"
	"time"
)

// MemoryStore implements a thread-safe in-memory TTL cache.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time // overridable for tests
}

// NewMemoryStore creates an in-memory store with the given TTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the stored body if a fresh entry exists for key.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[key]
	if !exists {
		return nil, false
	}
	if !valid(e.FetchedAt, s.ttl, s.now()) {
		return nil, false
	}
	return e.Body, true
}

// Set stores body for key, replacing any prior entry.
func (s *MemoryStore) Set(key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		FetchedAt: s.now(),
		Body:      body,
	}
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
