package throttle

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count     int
	expiresAt time.Time
}

// MemoryStore keeps failure counts in a process-local map. State is lost on
// restart, which is acceptable for a single-instance deployment.
type MemoryStore struct {
	mu      sync.Mutex
	window  time.Duration
	now     func() time.Time
	entries map[string]*memoryEntry
}

func NewMemoryStore(window time.Duration) *MemoryStore {
	return NewMemoryStoreWithClock(window, time.Now)
}

// NewMemoryStoreWithClock lets tests drive the decay window deterministically.
func NewMemoryStoreWithClock(window time.Duration, now func() time.Time) *MemoryStore {
	return &MemoryStore{
		window:  window,
		now:     now,
		entries: make(map[string]*memoryEntry),
	}
}

func (s *MemoryStore) Failures(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return 0, nil
	}
	return entry.count, nil
}

func (s *MemoryStore) AddFailure(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || s.now().After(entry.expiresAt) {
		s.entries[key] = &memoryEntry{count: 1, expiresAt: s.now().Add(s.window)}
		return nil
	}
	entry.count++
	return nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
