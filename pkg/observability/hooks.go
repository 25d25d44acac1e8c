// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about parsing, validation checks, and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetParseHooks(&myParseHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Check().OnCheckStart(ctx, docID, sentenceCount)
//	// ... run checks ...
//	observability.Check().OnCheckComplete(ctx, docID, findingCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Parse Hooks
// =============================================================================

// ParseHooks receives events from CoNLL-U reading and writing.
type ParseHooks interface {
	// OnParseStart records the beginning of a document parse.
	OnParseStart(ctx context.Context, docID string)

	// OnParseComplete records the end of a document parse.
	OnParseComplete(ctx context.Context, docID string, sentenceCount int, duration time.Duration, err error)

	// OnWriteComplete records a serialization pass.
	OnWriteComplete(ctx context.Context, docID string, sentenceCount int, duration time.Duration, err error)
}

// =============================================================================
// Check Hooks
// =============================================================================

// CheckHooks receives events from validation runs.
type CheckHooks interface {
	// OnCheckStart records the beginning of a validation run.
	OnCheckStart(ctx context.Context, docID string, sentenceCount int)

	// OnCheckComplete records the end of a validation run.
	OnCheckComplete(ctx context.Context, docID string, findingCount int, duration time.Duration, err error)

	// OnFinding records a single rule violation.
	OnFinding(ctx context.Context, code, address string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopParseHooks is a no-op implementation of ParseHooks.
type NoopParseHooks struct{}

func (NoopParseHooks) OnParseStart(context.Context, string)                               {}
func (NoopParseHooks) OnParseComplete(context.Context, string, int, time.Duration, error) {}
func (NoopParseHooks) OnWriteComplete(context.Context, string, int, time.Duration, error) {}

// NoopCheckHooks is a no-op implementation of CheckHooks.
type NoopCheckHooks struct{}

func (NoopCheckHooks) OnCheckStart(context.Context, string, int)                          {}
func (NoopCheckHooks) OnCheckComplete(context.Context, string, int, time.Duration, error) {}
func (NoopCheckHooks) OnFinding(context.Context, string, string)                          {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	parseHooks ParseHooks = NoopParseHooks{}
	checkHooks CheckHooks = NoopCheckHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetParseHooks registers custom parse hooks.
// This should be called once at application startup before any parse operations.
func SetParseHooks(h ParseHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		parseHooks = h
	}
}

// SetCheckHooks registers custom check hooks.
// This should be called once at application startup before any validation runs.
func SetCheckHooks(h CheckHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		checkHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Parse returns the registered parse hooks.
func Parse() ParseHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return parseHooks
}

// Check returns the registered check hooks.
func Check() CheckHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return checkHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	parseHooks = NoopParseHooks{}
	checkHooks = NoopCheckHooks{}
	cacheHooks = NoopCacheHooks{}
}
