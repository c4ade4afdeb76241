// Package cache memoizes geometry results behind a small key/value interface.
//
// Projection and bounding-box computations are cheap per call but editors and
// API clients repeat them with identical inputs on every frame or request.
// The [Cache] interface stores encoded results as bytes; a [Keyer] derives
// keys from every input that affects the result (tile set, zoom, scroll,
// origin and viewport).
//
// # Backends
//
//   - [NullCache] stores nothing; use it to disable caching.
//   - [FileCache] keeps entries on disk for the command line.
//   - [MemoryCache] is an in-process cache for a single API server.
//   - [RedisCache] shares entries between API server instances.
//
// All backends are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Default TTLs per result kind.
const (
	// TTLGeometry applies to bounds and fit results. Inputs fully determine
	// the output, so entries only expire to bound storage.
	TTLGeometry = 24 * time.Hour

	// TTLSnapshot applies to rendered scene snapshots.
	TTLSnapshot = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	// Get returns the value for key. A miss is reported as (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}
