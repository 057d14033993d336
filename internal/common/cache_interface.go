package common

import "time"

// CacheInterface abstracts the cache backend. The route catalog and the
// per-VA active-flights board read through it; a single-node deployment
// gets the in-process implementation, a multi-node one gets Redis.
type CacheInterface interface {
	// Set stores a value under key for the given duration.
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value by key, reporting whether it was present.
	Get(key string) (interface{}, bool)

	// Delete drops a key. Used to invalidate the active-flights board
	// when a flight changes state.
	Delete(key string)

	// GetOrSet returns the cached value, or runs loader and caches its
	// result. Loader errors are not cached.
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Close releases any underlying connections.
	Close() error
}
