// Package cache implements the cache-aside store used by the entity
// services: a byte-level Store backend (Redis or in-process) and typed
// helpers that JSON-encode values on top of it.
package cache

import (
	"context"
	"time"
)

// EntryOptions controls how long an entry lives. An entry expires when it
// has not been read for Sliding, or Absolute after it was written,
// whichever comes first.
type EntryOptions struct {
	Sliding  time.Duration
	Absolute time.Duration
}

// ttl returns the lifetime left for an entry with the given absolute
// deadline: the sliding window capped by the time remaining.
func (o EntryOptions) ttl(now, deadline time.Time) time.Duration {
	remaining := deadline.Sub(now)
	if o.Sliding > 0 && o.Sliding < remaining {
		return o.Sliding
	}
	return remaining
}

// Store is a byte-oriented cache backend. Get reports found=false for a
// missing or expired key. Removing an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, opts EntryOptions) error
	Remove(ctx context.Context, key string) error
}
