package cache

import (
	"context"
	"time"
)

// NullCache discards every report written to it and always misses.
// Selected when caching is disabled (--no-cache) or when annotated output is
// requested, since findings must then be recomputed and attached to nodes.
type NullCache struct{}

// NewNullCache creates a cache that never stores a report.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always misses, forcing the caller to re-run the checks.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the report.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete has nothing to remove.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
