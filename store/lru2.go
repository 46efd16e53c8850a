package store

import (
	"sync"
	"time"
)

// lru2Cache keeps first-seen entries on a small probation list. An entry is
// promoted to the main LRU when it is read or written a second time, so
// one-off values never push out the hot ones.
type lru2Cache struct {
	mu         sync.Mutex
	candidates *lruCache
	main       *lruCache
}

func newLRU2Cache(opts Options) *lru2Cache {
	capacity := opts.CandidateCap
	if capacity <= 0 {
		capacity = NewOptions().CandidateCap
	}
	return &lru2Cache{
		candidates: newBareLRU(opts.MaxBytes, capacity, opts.OnEvicted),
		main:       newLRUCache(opts),
	}
}

func (c *lru2Cache) Get(key string) (Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.main.Get(key); ok {
		return v, true
	}
	entry, ok := c.candidates.take(key)
	if !ok {
		return nil, false
	}
	ttl := time.Duration(0)
	if !entry.expires.IsZero() {
		if ttl = time.Until(entry.expires); ttl <= 0 {
			return nil, false
		}
	}
	_ = c.main.SetWithExpiration(key, entry.value, ttl)
	return entry.value, true
}

func (c *lru2Cache) Set(key string, value Value) error {
	return c.SetWithExpiration(key, value, 0)
}

func (c *lru2Cache) SetWithExpiration(key string, value Value, expiration time.Duration) error {
	if value == nil {
		c.Delete(key)
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.main.has(key) {
		return c.main.SetWithExpiration(key, value, expiration)
	}
	if _, ok := c.candidates.take(key); ok {
		return c.main.SetWithExpiration(key, value, expiration)
	}
	return c.candidates.SetWithExpiration(key, value, expiration)
}

func (c *lru2Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	inMain := c.main.Delete(key)
	inCandidates := c.candidates.Delete(key)
	return inMain || inCandidates
}

func (c *lru2Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.candidates.Clear()
	c.main.Clear()
}

func (c *lru2Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.candidates.Len() + c.main.Len()
}

func (c *lru2Cache) UsedBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.candidates.UsedBytes() + c.main.UsedBytes()
}

func (c *lru2Cache) Close() {
	c.candidates.Close()
	c.main.Close()
}
