package store

import (
	"container/list"
	"sync"
	"time"
)

// lruCache is a byte-bounded LRU with optional per-entry expiry.
type lruCache struct {
	mu         sync.Mutex
	ll         *list.List // front is least recently used
	items      map[string]*list.Element
	maxBytes   int64
	maxEntries int
	usedBytes  int64
	onEvicted  func(key string, value Value)

	ticker    *time.Ticker
	closeCh   chan struct{}
	closeOnce sync.Once
}

type lruEntry struct {
	key     string
	value   Value
	expires time.Time // zero means no expiry
}

func (e *lruEntry) size() int64 {
	return int64(len(e.key) + e.value.Len())
}

func (e *lruEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func newLRUCache(opts Options) *lruCache {
	c := newBareLRU(opts.MaxBytes, 0, opts.OnEvicted)
	interval := opts.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}
	c.ticker = time.NewTicker(interval)
	go c.cleanupLoop()
	return c
}

// newBareLRU builds an LRU without the cleanup goroutine.
func newBareLRU(maxBytes int64, maxEntries int, onEvicted func(string, Value)) *lruCache {
	return &lruCache{
		ll:         list.New(),
		items:      make(map[string]*list.Element),
		maxBytes:   maxBytes,
		maxEntries: maxEntries,
		onEvicted:  onEvicted,
		closeCh:    make(chan struct{}),
	}
}

func (c *lruCache) Get(key string) (Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*lruEntry)
	if entry.expired(time.Now()) {
		c.removeElement(elem)
		return nil, false
	}
	c.ll.MoveToBack(elem)
	return entry.value, true
}

func (c *lruCache) Set(key string, value Value) error {
	return c.SetWithExpiration(key, value, 0)
}

// SetWithExpiration stores value. A nil value deletes the key.
func (c *lruCache) SetWithExpiration(key string, value Value, expiration time.Duration) error {
	if value == nil {
		c.Delete(key)
		return nil
	}
	var expires time.Time
	if expiration > 0 {
		expires = time.Now().Add(expiration)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*lruEntry)
		c.usedBytes -= entry.size()
		entry.value = value
		entry.expires = expires
		c.usedBytes += entry.size()
		c.ll.MoveToBack(elem)
	} else {
		entry := &lruEntry{key: key, value: value, expires: expires}
		c.items[key] = c.ll.PushBack(entry)
		c.usedBytes += entry.size()
	}
	c.evict()
	return nil
}

func (c *lruCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
		return true
	}
	return false
}

func (c *lruCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

// take removes key without firing onEvicted and returns its entry.
func (c *lruCache) take(key string) (*lruEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*lruEntry)
	delete(c.items, key)
	c.ll.Remove(elem)
	c.usedBytes -= entry.size()
	if entry.expired(time.Now()) {
		if c.onEvicted != nil {
			c.onEvicted(entry.key, entry.value)
		}
		return nil, false
	}
	return entry, true
}

func (c *lruCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.onEvicted != nil {
		for e := c.ll.Front(); e != nil; e = e.Next() {
			entry := e.Value.(*lruEntry)
			c.onEvicted(entry.key, entry.value)
		}
	}
	c.ll.Init()
	c.items = make(map[string]*list.Element)
	c.usedBytes = 0
}

func (c *lruCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

func (c *lruCache) UsedBytes() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usedBytes
}

// Close stops the cleanup goroutine. The stored entries stay readable.
func (c *lruCache) Close() {
	c.closeOnce.Do(func() {
		if c.ticker != nil {
			c.ticker.Stop()
		}
		close(c.closeCh)
	})
}

func (c *lruCache) cleanupLoop() {
	for {
		select {
		case <-c.ticker.C:
			c.mu.Lock()
			c.removeExpired(time.Now())
			c.mu.Unlock()
		case <-c.closeCh:
			return
		}
	}
}

// evict drops expired entries, then the oldest ones until the limits hold.
// Must be called with mu held.
func (c *lruCache) evict() {
	c.removeExpired(time.Now())
	for c.overLimit() {
		front := c.ll.Front()
		if front == nil {
			return
		}
		c.removeElement(front)
	}
}

func (c *lruCache) overLimit() bool {
	if c.maxBytes > 0 && c.usedBytes > c.maxBytes {
		return true
	}
	return c.maxEntries > 0 && c.ll.Len() > c.maxEntries
}

func (c *lruCache) removeExpired(now time.Time) {
	for e := c.ll.Front(); e != nil; {
		next := e.Next()
		if e.Value.(*lruEntry).expired(now) {
			c.removeElement(e)
		}
		e = next
	}
}

func (c *lruCache) removeElement(elem *list.Element) {
	entry := elem.Value.(*lruEntry)
	delete(c.items, entry.key)
	c.ll.Remove(elem)
	c.usedBytes -= entry.size()
	if c.onEvicted != nil {
		c.onEvicted(entry.key, entry.value)
	}
}
