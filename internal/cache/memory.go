package cache

import (
  "context"
  "strings"
  "sync"
  "time"
)

type memoryEntry struct {
  value     []byte
  expiresAt time.Time
}

// MemoryStore is an in-process Store used in tests and as the fallback when
// no redis address is configured.
type MemoryStore struct {
  mu      sync.RWMutex
  entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
  return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool) {
  s.mu.RLock()
  entry, ok := s.entries[key]
  s.mu.RUnlock()
  if !ok {
    return nil, false
  }
  if time.Now().After(entry.expiresAt) {
    s.mu.Lock()
    delete(s.entries, key)
    s.mu.Unlock()
    return nil, false
  }
  return entry.value, true
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
  s.mu.Lock()
  s.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
  s.mu.Unlock()
}

func (s *MemoryStore) DeletePrefix(ctx context.Context, prefix string) {
  s.mu.Lock()
  for key := range s.entries {
    if strings.HasPrefix(key, prefix) {
      delete(s.entries, key)
    }
  }
  s.mu.Unlock()
}
