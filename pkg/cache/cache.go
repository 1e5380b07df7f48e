// Package cache provides a time-bounded key/value cache with an injectable clock.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long fetched image listings are reused
const DefaultTTL = 5 * time.Minute

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time { return time.Now() }

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLCache holds values for a fixed duration measured on its clock
type TTLCache[V any] struct {
	items *gocache.Cache
	ttl   time.Duration
	clock Clock
}

// New creates a cache whose entries expire ttl after being set. A nil clock uses the wall clock.
func New[V any](ttl time.Duration, clock Clock) *TTLCache[V] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TTLCache[V]{
		items: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
		clock: clock,
	}
}

// Get returns the value stored under key if it has not expired
func (c *TTLCache[V]) Get(key string) (V, bool) {
	var zero V
	item, ok := c.items.Get(key)
	if !ok {
		return zero, false
	}
	e, ok := item.(entry[V])
	if !ok {
		return zero, false
	}
	if c.clock.Now().Sub(e.storedAt) >= c.ttl {
		c.items.Delete(key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key
func (c *TTLCache[V]) Set(key string, value V) {
	c.items.Set(key, entry[V]{value: value, storedAt: c.clock.Now()}, gocache.DefaultExpiration)
}

// Delete removes key
func (c *TTLCache[V]) Delete(key string) {
	c.items.Delete(key)
}

// Flush removes every entry
func (c *TTLCache[V]) Flush() {
	c.items.Flush()
}

// Len counts stored entries, including expired ones not yet evicted
func (c *TTLCache[V]) Len() int {
	return c.items.ItemCount()
}
