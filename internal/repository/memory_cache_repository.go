package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sync"
	"time"

	appErrors "github.com/noah-isme/vle-dashboard-api/pkg/errors"
)

// MemoryCacheRepository is the in-process cache backend used when Redis is
// disabled. Entries are independent and guarded by a single RWMutex; after
// expiry the last writer wins, which is all the freshness-window contract
// requires. Values round-trip through JSON so callers get the same copy
// semantics as the Redis backend.
type MemoryCacheRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryCacheEntry
	now     func() time.Time
}

type memoryCacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewMemoryCacheRepository constructs an empty in-process cache.
func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{
		entries: make(map[string]memoryCacheEntry),
		now:     time.Now,
	}
}

// Get retrieves and unmarshals a live entry, returning ErrCacheMiss for
// absent or expired keys. Expired entries are pruned on read.
func (r *MemoryCacheRepository) Get(_ context.Context, key string, dest interface{}) error {
	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		return appErrors.ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && r.now().After(entry.expiresAt) {
		r.mu.Lock()
		if current, still := r.entries[key]; still && current.expiresAt.Equal(entry.expiresAt) {
			delete(r.entries, key)
		}
		r.mu.Unlock()
		return appErrors.ErrCacheMiss
	}

	if err := json.Unmarshal(entry.payload, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set marshals the value and stores it with the given TTL. A non-positive TTL
// stores the entry without expiry.
func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}

	entry := memoryCacheEntry{payload: payload}
	if ttl > 0 {
		entry.expiresAt = r.now().Add(ttl)
	}

	r.mu.Lock()
	r.entries[key] = entry
	r.mu.Unlock()
	return nil
}

// DeleteByPattern removes entries whose key matches the glob pattern, using
// the same glob syntax the Redis SCAN backend honours.
func (r *MemoryCacheRepository) DeleteByPattern(_ context.Context, pattern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.entries {
		matched, err := path.Match(pattern, key)
		if err != nil {
			return fmt.Errorf("match cache pattern %s: %w", pattern, err)
		}
		if matched {
			delete(r.entries, key)
		}
	}
	return nil
}

// Len reports the number of stored entries, live or expired.
func (r *MemoryCacheRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
