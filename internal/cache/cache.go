package cache

import (
	"context"
	"time"
)

// Cache is the cache-aside contract. Read-through is the caller's job: check
// Get, on a miss call the producer, then Set. The store never invokes
// producers and is agnostic to the shape of what it holds; values cross the
// boundary as JSON.
//
// Implementations must make each key operation atomic; callers need no
// additional locking. Concurrent cold misses on one key are permitted to
// each fetch and populate independently. Coalescing, where wanted, lives
// above the store.
type Cache interface {
	// Get unmarshals the entry for key into dest and reports whether it was
	// present and unexpired.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set stores value under key. A non-positive ttl falls back to the
	// store's default policy.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	Health(ctx context.Context) bool
}
