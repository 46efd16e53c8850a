package codec

import (
	"crypto/sha256"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"cc7/singleflight"
	"cc7/store"
)

// ErrCacheClosed is returned when priming a closed Cache.
var ErrCacheClosed = errors.New("encoder cache closed")

// CacheOptions configures a Cache.
type CacheOptions struct {
	Policy       store.Policy
	MaxBytes     int64
	CandidateCap uint16
	MinSize      int           // inputs shorter than this are encoded directly
	Expiration   time.Duration // 0 means entries never expire
	CleanupTime  time.Duration
	OnEvicted    func(key string, value store.Value)
}

func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		Policy:       store.LRU2,
		MaxBytes:     4 << 20,
		CandidateCap: 256,
		MinSize:      64,
		CleanupTime:  time.Minute,
	}
}

// CacheOption tweaks CacheOptions.
type CacheOption func(*CacheOptions)

// WithCacheOptions replaces every option at once.
func WithCacheOptions(opts CacheOptions) CacheOption {
	return func(o *CacheOptions) { *o = opts }
}

func WithPolicy(p store.Policy) CacheOption {
	return func(o *CacheOptions) { o.Policy = p }
}

func WithMaxBytes(n int64) CacheOption {
	return func(o *CacheOptions) { o.MaxBytes = n }
}

func WithMinSize(n int) CacheOption {
	return func(o *CacheOptions) { o.MinSize = n }
}

func WithExpiration(d time.Duration) CacheOption {
	return func(o *CacheOptions) { o.Expiration = d }
}

func WithOnEvicted(fn func(key string, value store.Value)) CacheOption {
	return func(o *CacheOptions) { o.OnEvicted = fn }
}

// text is an encoded result held by the store.
type text string

func (t text) Len() int { return len(t) }

// Cache is an Encoder that memoizes results for large, repeatedly encoded
// inputs such as certificates and public keys. Entries are keyed by format
// and a SHA-256 digest of the input. It is safe for concurrent use.
type Cache struct {
	mu          sync.RWMutex
	store       store.Store
	opts        CacheOptions
	loader      singleflight.Group[string]
	hits        int64
	misses      int64
	loads       int64
	shared      int64
	bypassed    int64
	initialized int32
	closed      int32
}

var _ Encoder = (*Cache)(nil)

func NewCache(options ...CacheOption) *Cache {
	opts := DefaultCacheOptions()
	for _, opt := range options {
		opt(&opts)
	}
	return &Cache{opts: opts}
}

func (c *Cache) Hex(data []byte, lowerCase bool) string {
	return c.encode(data, hexPrefix(lowerCase), func() string { return EncodeHex(data, lowerCase) })
}

func (c *Cache) Base64(data []byte, wrap int) string {
	return c.encode(data, base64Prefix(wrap), func() string { return EncodeBase64(data, wrap) })
}

// PrimeHex stores the hex form of data regardless of MinSize.
func (c *Cache) PrimeHex(data []byte, lowerCase bool) error {
	return c.prime(cacheKey(hexPrefix(lowerCase), data), EncodeHex(data, lowerCase))
}

// PrimeBase64 stores the base64 form of data regardless of MinSize.
func (c *Cache) PrimeBase64(data []byte, wrap int) error {
	return c.prime(cacheKey(base64Prefix(wrap), data), EncodeBase64(data, wrap))
}

func (c *Cache) prime(key, value string) error {
	if atomic.LoadInt32(&c.closed) == 1 {
		return ErrCacheClosed
	}
	// the second write moves the entry past lru2 probation
	c.add(key, value)
	c.add(key, value)
	return nil
}

// encode serves key from the store or runs fn once for all concurrent callers.
func (c *Cache) encode(data []byte, prefix string, fn func() string) string {
	if len(data) < c.opts.MinSize || atomic.LoadInt32(&c.closed) == 1 {
		atomic.AddInt64(&c.bypassed, 1)
		return fn()
	}
	key := cacheKey(prefix, data)
	if v, ok := c.get(key); ok {
		return v
	}
	v, _, shared := c.loader.Do(key, func() (string, error) {
		atomic.AddInt64(&c.loads, 1)
		s := fn()
		c.add(key, s)
		return s, nil
	})
	if shared {
		atomic.AddInt64(&c.shared, 1)
	}
	return v
}

// ensureInitialized lazily creates the underlying store on first write.
func (c *Cache) ensureInitialized() {
	if atomic.LoadInt32(&c.initialized) == 1 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if atomic.LoadInt32(&c.initialized) == 0 && atomic.LoadInt32(&c.closed) == 0 {
		c.store = store.NewStore(store.Options{
			Policy:          c.opts.Policy,
			MaxBytes:        c.opts.MaxBytes,
			CandidateCap:    int(c.opts.CandidateCap),
			CleanupInterval: c.opts.CleanupTime,
			OnEvicted:       c.opts.OnEvicted,
		})
		atomic.StoreInt32(&c.initialized, 1)
		logger.Infof("encoder cache initialized with policy %s, max bytes %d", c.opts.Policy, c.opts.MaxBytes)
	}
}

func (c *Cache) get(key string) (string, bool) {
	if atomic.LoadInt32(&c.initialized) == 0 {
		atomic.AddInt64(&c.misses, 1)
		return "", false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.store == nil {
		atomic.AddInt64(&c.misses, 1)
		return "", false
	}
	v, ok := c.store.Get(key)
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		return "", false
	}
	s, ok := v.(text)
	if !ok {
		logger.Warnf("unexpected value type %T in encoder cache", v)
		atomic.AddInt64(&c.misses, 1)
		return "", false
	}
	atomic.AddInt64(&c.hits, 1)
	return string(s), true
}

func (c *Cache) add(key, value string) {
	c.ensureInitialized()
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.store == nil {
		return
	}
	if err := c.store.SetWithExpiration(key, text(value), c.opts.Expiration); err != nil {
		logger.Warnf("failed to store encoded value: %v", err)
	}
}

// Len reports the number of stored encodings.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.store == nil {
		return 0
	}
	return c.store.Len()
}

// Clear drops every stored encoding and resets the hit counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		return
	}
	c.store.Clear()
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	logger.Info("encoder cache cleared")
}

// Close releases the store. Later calls still encode, just without memoizing.
func (c *Cache) Close() {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store != nil {
		c.store.Close()
		c.store = nil
	}
	atomic.StoreInt32(&c.initialized, 0)
	logger.Infof("encoder cache closed, hits: %d, misses: %d", atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses))
}

// Stats exposes cache counters and size.
func (c *Cache) Stats() map[string]interface{} {
	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	stats := map[string]interface{}{
		"initialized": atomic.LoadInt32(&c.initialized) == 1,
		"closed":      atomic.LoadInt32(&c.closed) == 1,
		"hits":        hits,
		"misses":      misses,
		"loads":       atomic.LoadInt64(&c.loads),
		"shared":      atomic.LoadInt64(&c.shared),
		"bypassed":    atomic.LoadInt64(&c.bypassed),
		"size":        c.Len(),
	}
	if total := hits + misses; total > 0 {
		stats["hit_rate"] = float64(hits) / float64(total)
	} else {
		stats["hit_rate"] = 0.0
	}
	return stats
}

func hexPrefix(lowerCase bool) string {
	if lowerCase {
		return "hex:l:"
	}
	return "hex:u:"
}

func base64Prefix(wrap int) string {
	if wrap < 0 {
		wrap = 0
	}
	return "b64:" + strconv.Itoa(wrap) + ":"
}

func cacheKey(prefix string, data []byte) string {
	sum := sha256.Sum256(data)
	return prefix + string(sum[:])
}
