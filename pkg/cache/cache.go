// Package cache stores rendered output keyed by content hash.
//
// Rendering is deterministic, so a response computed once can be served
// again for the same data, options and color profile. Three backends
// implement [Cache]:
//   - [FileCache]: one file per entry holding an expiry line and the raw
//     bytes, for the CLI and single-node servers
//   - [RedisCache]: shared across server replicas
//   - [NullCache]: caching disabled
//
// Keys are built with [Key], which hashes every input that affects output.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
// Implementations are safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes and true, or nil and false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// NullCache never stores anything; every Get is a miss.
type NullCache struct{}

// NewNullCache returns a cache that disables caching.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

// keyVersion is mixed into every key. Bump it when rendered output changes
// so stale entries stop matching.
const keyVersion = 2

// Key returns "kind:<sha256>" over the JSON encoding of parts.
func Key(kind string, parts ...any) string {
	data, err := json.Marshal(append([]any{keyVersion}, parts...))
	if err != nil {
		data = []byte(fmt.Sprint(parts...))
	}
	return kind + ":" + Hash(data)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
