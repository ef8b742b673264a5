// Package cache provides a process-wide in-memory TTL cache.
//
// Entries expire passively: a lookup past the TTL reports a miss, and
// the next Set overwrites the stale entry. There is no delete API.
// Values must be treated as immutable once stored; concurrent writers
// race with last-write-wins semantics.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value   any
	expires time.Time
}

// Cache is a string-keyed TTL cache safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]entry)}
}

// Get returns the value stored under key, or false on a miss or an
// expired entry.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for the given TTL, replacing any existing
// entry.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:   value,
		expires: time.Now().Add(ttl),
	}
}
