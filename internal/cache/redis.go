package cache

import (
  "context"
  "fmt"
  "strings"
  "time"

  goredis "github.com/redis/go-redis/v9"

  "github.com/edukita/lms-backend/internal/logger"
  "github.com/edukita/lms-backend/internal/utils"
)

type redisStore struct {
  log *logger.Logger
  rdb *goredis.Client
}

// NewRedisStore connects to the address in REDIS_ADDR and pings it before
// handing the store back, so a bad address fails at startup rather than on
// the first request.
func NewRedisStore(log *logger.Logger) (Store, error) {
  if log == nil {
    return nil, fmt.Errorf("logger required")
  }

  addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
  if addr == "" {
    return nil, fmt.Errorf("missing REDIS_ADDR")
  }

  rdb := goredis.NewClient(&goredis.Options{
    Addr:        addr,
    DialTimeout: 5 * time.Second,
  })

  ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
  defer cancel()
  if err := rdb.Ping(ctx).Err(); err != nil {
    _ = rdb.Close()
    return nil, fmt.Errorf("redis ping: %w", err)
  }

  return &redisStore{
    log: log.With("service", "RedisCacheStore"),
    rdb: rdb,
  }, nil
}

// Get degrades to a miss on any redis error; the caller falls through to
// storage either way.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool) {
  val, err := s.rdb.Get(ctx, key).Bytes()
  if err == goredis.Nil {
    return nil, false
  }
  if err != nil {
    s.log.Warn("cache get failed, treating as miss", "key", key, "error", err)
    return nil, false
  }
  return val, true
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
  if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
    s.log.Warn("cache set failed", "key", key, "error", err)
  }
}

// DeletePrefix removes every key under prefix via SCAN batches. Best-effort:
// entries that survive a partial failure still expire with their TTL.
func (s *redisStore) DeletePrefix(ctx context.Context, prefix string) {
  var cursor uint64
  for {
    keys, next, err := s.rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
    if err != nil {
      s.log.Warn("cache scan failed during prefix invalidation", "prefix", prefix, "error", err)
      return
    }
    if len(keys) > 0 {
      if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
        s.log.Warn("cache delete failed during prefix invalidation", "prefix", prefix, "error", err)
      }
    }
    cursor = next
    if cursor == 0 {
      return
    }
  }
}
