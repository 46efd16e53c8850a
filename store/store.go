// Package store holds bounded in-memory stores for memoized values.
package store

import "time"

// Value reports its memory footprint for eviction accounting.
type Value interface {
	Len() int
}

// Store is the backend interface used by codec.Cache.
type Store interface {
	Get(key string) (Value, bool)
	Set(key string, value Value) error
	// SetWithExpiration stores value for at most expiration. A non-positive
	// expiration means the entry never expires.
	SetWithExpiration(key string, value Value, expiration time.Duration) error
	Delete(key string) bool
	Clear()
	Len() int
	// UsedBytes is the sum of len(key)+value.Len() over all entries.
	UsedBytes() int64
	Close()
}

// Policy selects the eviction strategy.
type Policy string

const (
	LRU  Policy = "lru"  // least recently used
	LRU2 Policy = "lru2" // entries must be seen twice before they enter the main LRU
)

type Options struct {
	Policy          Policy
	MaxBytes        int64 // <= 0 means unbounded
	CandidateCap    int   // lru2: number of first-seen entries kept on probation
	CleanupInterval time.Duration
	OnEvicted       func(key string, value Value)
}

func NewOptions() Options {
	return Options{
		Policy:          LRU,
		MaxBytes:        8 << 20,
		CandidateCap:    256,
		CleanupInterval: time.Minute,
	}
}

// NewStore picks a store implementation by policy. Unknown policies fall back
// to LRU.
func NewStore(opts Options) Store {
	switch opts.Policy {
	case LRU2:
		return newLRU2Cache(opts)
	default:
		return newLRUCache(opts)
	}
}
