// Package cache stores validation reports keyed by document content, so
// re-running a corpus check skips files that have not changed.
//
// Keys are derived from the SHA-256 of the CoNLL-U bytes plus a hash of the
// active rule configuration (see ReportKey): any edit to the document or the
// ruleset produces a different key, so stale reports are never served.
// Backends: file (CLI default), redis (shared deployments), null (disabled).
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiration.
// Implementations must treat a missing key as a miss, not an error.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores it without expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
