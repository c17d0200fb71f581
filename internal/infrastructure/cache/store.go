package cache

import (
	"context"
	"time"
)

// Store is the analytics result cache: values are serialized JSON keyed by
// a composite fingerprint, so invalidation is key mismatch rather than an
// external trigger
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, expiration time.Duration)
	Delete(ctx context.Context, key string)
}
