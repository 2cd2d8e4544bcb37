package cache

import "sync"

// MemoryStore is the in-process Store used when no cache file is
// configured and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Get(path string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[path]
	return entry, ok
}

func (s *MemoryStore) Put(path string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[path] = entry
	return nil
}

func (s *MemoryStore) Close() error { return nil }
