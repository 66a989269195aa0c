// Package cache provides a file-based cache for compiled diagram
// bodies, keyed by a hash of the input bytes and the render options.
// Recompiling an unchanged diagram is cheap, but LaTeX runs downstream
// of hbdtex are not, so callers can skip re-emitting unchanged output.
package cache

import (
	"context"
	"time"
)

// Cache stores compiled diagram bodies.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// CompileKey derives the cache key for one input: a hash over the
// source bytes and every option that changes the emitted body.
func CompileKey(source []byte, separate bool) string {
	return hashKey("compile", string(source), separate)
}
