// Package cache provides small in-process TTL caches. One Expiring
// value is held per cached view; Keyed adds a map dimension for caches
// scoped by collection id.
package cache

import (
	"sync"
	"time"
)

// Expiring holds a single value that is considered valid only while
// now - stamp < ttl. The zero timestamp means "never populated", so
// Clear makes the next Get miss regardless of TTL.
type Expiring[T any] struct {
	mu    sync.RWMutex
	value T
	stamp time.Time
	ttl   time.Duration
	now   func() time.Time
}

// NewExpiring creates an empty cache with the given TTL.
func NewExpiring[T any](ttl time.Duration) *Expiring[T] {
	return &Expiring[T]{ttl: ttl, now: time.Now}
}

// Get returns the cached value and whether it is still fresh.
func (c *Expiring[T]) Get() (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.stamp.IsZero() || c.now().Sub(c.stamp) >= c.ttl {
		var zero T
		return zero, false
	}
	return c.value, true
}

// Set stores a value with the current timestamp.
func (c *Expiring[T]) Set(value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = value
	c.stamp = c.now()
}

// Clear resets the cache so the next Get misses.
func (c *Expiring[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	c.value = zero
	c.stamp = time.Time{}
}

// Keyed is a map of independently expiring entries sharing one TTL.
type Keyed[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]keyedEntry[V]
	ttl     time.Duration
	now     func() time.Time
}

type keyedEntry[V any] struct {
	value V
	stamp time.Time
}

// NewKeyed creates an empty keyed cache with the given TTL.
func NewKeyed[K comparable, V any](ttl time.Duration) *Keyed[K, V] {
	return &Keyed[K, V]{
		entries: make(map[K]keyedEntry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the entry for key and whether it is still fresh.
func (c *Keyed[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.stamp) >= c.ttl {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// GetStale returns the entry for key even if it has expired. Used to
// serve the last good value when a refresh against the remote fails.
func (c *Keyed[K, V]) GetStale(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Set stores an entry for key with the current timestamp.
func (c *Keyed[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = keyedEntry[V]{value: value, stamp: c.now()}
}

// Clear drops every entry.
func (c *Keyed[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]keyedEntry[V])
}
