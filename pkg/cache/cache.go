// Package cache stores rendered diagrams so repeated renders of the same
// DOT source skip Graphviz.
//
// Keys are derived from the content being rendered with [Key], so a cache
// entry never goes stale: a changed layout produces a different key. Entries
// may still carry a TTL to keep the cache directory from growing forever.
//
// Use [NewFileCache] for the CLI and [NewNullCache] when caching is
// disabled.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the entry for key. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key returns the cache key for source rendered as kind, e.g. Key("svg", dot).
func Key(kind string, source []byte) string {
	return kind + ":" + Hash(source)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
