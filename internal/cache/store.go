package cache

import (
  "context"
  "time"
)

// Store is a TTL key/value cache with bulk prefix invalidation. It is an
// accelerator only: callers must behave identically when every Get misses.
type Store interface {
  Get(ctx context.Context, key string) ([]byte, bool)
  Set(ctx context.Context, key string, value []byte, ttl time.Duration)
  DeletePrefix(ctx context.Context, prefix string)
}
