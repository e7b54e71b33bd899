// Package cache stores rendered declarations and graph dumps so repeated
// runs over unchanged samples skip inference.
//
// # Backends
//
//   - [FileCache]: JSON entry files under a directory; the CLI default.
//   - [MemoryCache]: an in-process LRU for the HTTP server.
//   - [RedisCache]: a shared cache for several server instances.
//   - [NullCache]: never stores anything; used for --no-cache.
//
// # Keys
//
// Keys are produced by a [Keyer]. They hash the sample content together
// with every option that changes the output, so a config change never
// returns a stale result. [ScopedKeyer] prefixes keys to separate tenants
// sharing one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry TTL.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}

// TTLs for cached artifacts. Results are pure functions of their key, so
// these only bound disk and memory use.
const (
	TTLTypings = 7 * 24 * time.Hour
	TTLGraph   = 24 * time.Hour
)
