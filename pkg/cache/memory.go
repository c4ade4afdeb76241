package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// MemoryConfig sizes a [MemoryCache].
type MemoryConfig struct {
	// MaxBytes bounds the total size of stored values.
	MaxBytes int64
	// NumCounters is the number of admission counters, roughly ten times
	// the expected number of entries.
	NumCounters int64
}

// DefaultMemoryConfig holds up to 64MB.
var DefaultMemoryConfig = MemoryConfig{MaxBytes: 64 << 20, NumCounters: 100_000}

// MemoryCache is an in-process cache with cost-based eviction. The API
// server uses it when no Redis URL is configured.
type MemoryCache struct {
	store  *ristretto.Cache[string, []byte]
	closed atomic.Bool
}

// NewMemoryCache returns an empty in-process cache.
func NewMemoryCache(cfg MemoryConfig) (*MemoryCache, error) {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMemoryConfig.MaxBytes
	}
	if cfg.NumCounters <= 0 {
		cfg.NumCounters = DefaultMemoryConfig.NumCounters
	}
	store, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &MemoryCache{store: store}, nil
}

// Get implements [Cache].
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if c.closed.Load() {
		return nil, false, ErrClosed
	}
	data, ok := c.store.Get(key)
	return data, ok, nil
}

// Set implements [Cache]. Writes are applied synchronously so a Get right
// after Set observes the value unless the entry was rejected by admission.
func (c *MemoryCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	if c.closed.Load() {
		return ErrClosed
	}
	cost := int64(len(data))
	if cost == 0 {
		cost = 1
	}
	c.store.SetWithTTL(key, data, cost, ttl)
	c.store.Wait()
	return nil
}

// Delete implements [Cache].
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.store.Del(key)
	return nil
}

// Close implements [Cache].
func (c *MemoryCache) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		c.store.Close()
	}
	return nil
}

var _ Cache = (*MemoryCache)(nil)
