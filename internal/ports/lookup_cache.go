package ports

import (
	"context"
	"time"
)

// Key/value store for provider responses. Values are opaque encoded payloads.
// A miss is reported with ok=false and a nil error.
type LookupCache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
