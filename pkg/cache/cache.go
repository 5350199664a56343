// Package cache provides pluggable byte caches used for fetched front-end
// assets.
//
// Three backends implement the same [Cache] interface:
//   - [FileCache]: file-based storage for CLI usage
//   - [RedisCache]: Redis-backed storage for shared environments
//   - [NullCache]: no-op cache for tests or disabled caching
//
// Keys are arbitrary strings; backends hash them where needed so long keys
// (URLs) are safe. A TTL of 0 means entries never expire, which suits
// version-pinned assets.
//
// Cache instances are safe for use from a single goroutine; callers needing
// concurrent access must synchronize.
package cache

import (
	"context"
	"time"
)

// Cache is the interface implemented by all cache backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found
	// and fresh; expired or missing entries are a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
