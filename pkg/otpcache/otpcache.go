// Package otpcache keeps short-lived one-time codes in process memory. The
// cache is bounded: once it holds Capacity entries, writing a new key evicts
// the least recently used one. Entries also expire TTL after their last write.
package otpcache

import (
	"container/list"
	"sync"
	"time"
)

const (
	DefaultCapacity = 500
	DefaultTTL      = 5 * time.Minute
)

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

type entry struct {
	key       string
	code      string
	expiresAt time.Time
}

// Cache is safe for concurrent use.
type Cache struct {
	capacity int
	ttl      time.Duration
	now      Clock

	mu    sync.Mutex
	ll    *list.List // front is most recently used
	items map[string]*list.Element
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source.
func WithClock(c Clock) Option {
	return func(cache *Cache) { cache.now = c }
}

// New creates a cache. Non-positive capacity or ttl fall back to the defaults.
func New(capacity int, ttl time.Duration, opts ...Option) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the cache key used for an email address.
func Key(email string) string {
	return "otp:" + email
}

// Set stores code under key, replacing any previous code and restarting its TTL.
func (c *Cache) Set(key, code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry)
		e.code = code
		e.expiresAt = expires
		c.ll.MoveToFront(el)
		return
	}

	c.items[key] = c.ll.PushFront(&entry{key: key, code: code, expiresAt: expires})
	for c.ll.Len() > c.capacity {
		c.removeElement(c.ll.Back())
	}
}

// Get returns the live code for key. Expired entries are removed and reported
// as absent.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	e := el.Value.(*entry)
	if !c.now().Before(e.expiresAt) {
		c.removeElement(el)
		return "", false
	}
	c.ll.MoveToFront(el)
	return e.code, true
}

// Delete removes key if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.removeElement(el)
	}
}

// Purge drops every expired entry and returns how many were removed.
func (c *Cache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.ll.Back(); el != nil; {
		prev := el.Prev()
		if !now.Before(el.Value.(*entry).expiresAt) {
			c.removeElement(el)
			removed++
		}
		el = prev
	}
	return removed
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *Cache) removeElement(el *list.Element) {
	c.ll.Remove(el)
	delete(c.items, el.Value.(*entry).key)
}
