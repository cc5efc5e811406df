package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/timex"
)

type memoryEntry struct {
	value    []byte
	sliding  time.Duration
	deadline time.Time
	expires  time.Time
}

// sweepInterval bounds how often Set scans for expired entries.
const sweepInterval = time.Minute

// MemoryStore is the in-process Store used when no Redis URL is
// configured. Expired entries are dropped on read, and Set sweeps the
// whole map at most once per sweepInterval so keys never read again do
// not pile up.
type MemoryStore struct {
	mu        sync.Mutex
	clock     timex.Clock
	entries   map[string]*memoryEntry
	lastSweep time.Time
}

func NewMemoryStore(clock timex.Clock) *MemoryStore {
	return &MemoryStore{clock: clock, entries: make(map[string]*memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	now := s.clock.Now()
	if !now.Before(e.expires) {
		delete(s.entries, key)
		return nil, false, nil
	}
	e.expires = now.Add(EntryOptions{Sliding: e.sliding}.ttl(now, e.deadline))

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, opts EntryOptions) error {
	now := s.clock.Now()
	deadline := now.Add(opts.Absolute)
	ttl := opts.ttl(now, deadline)
	if ttl <= 0 {
		return errors.New("cache entry options give a non-positive lifetime")
	}

	v := make([]byte, len(value))
	copy(v, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Sub(s.lastSweep) >= sweepInterval {
		s.sweep(now)
	}
	s.entries[key] = &memoryEntry{value: v, sliding: opts.Sliding, deadline: deadline, expires: now.Add(ttl)}
	return nil
}

// sweep drops expired entries. Callers hold mu.
func (s *MemoryStore) sweep(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
	s.lastSweep = now
}

func (s *MemoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// Len reports how many entries are held, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
