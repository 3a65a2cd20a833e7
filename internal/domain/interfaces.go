// Package domain holds the small set of types shared across package
// boundaries: sentinel errors, retry classification, and the cache
// interface the remote checker consumes.
package domain

import (
	"context"
	"time"
)

// Cache is a TTL key-value store for upstream ref listings
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Has(ctx context.Context, key string) bool
	Delete(ctx context.Context, key string) error
	Close() error
}
