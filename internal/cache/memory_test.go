package cache

import (
  "context"
  "testing"
  "time"
)

func TestMemoryStore_SetGet(t *testing.T) {
  ctx := context.Background()
  store := NewMemoryStore()

  store.Set(ctx, "courses:detail:id=1", []byte(`{"id":1}`), time.Minute)

  raw, ok := store.Get(ctx, "courses:detail:id=1")
  if !ok {
    t.Fatal("expected cache hit")
  }
  if string(raw) != `{"id":1}` {
    t.Fatalf("unexpected cached value: %s", raw)
  }

  if _, ok := store.Get(ctx, "courses:detail:id=2"); ok {
    t.Fatal("expected miss for unknown key")
  }
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
  ctx := context.Background()
  store := NewMemoryStore()

  store.Set(ctx, "courses:list", []byte("[]"), -time.Second)

  if _, ok := store.Get(ctx, "courses:list"); ok {
    t.Fatal("expected expired entry to miss")
  }
}

func TestMemoryStore_DeletePrefix(t *testing.T) {
  ctx := context.Background()
  store := NewMemoryStore()

  store.Set(ctx, "courses:list", []byte("[]"), time.Minute)
  store.Set(ctx, "courses:detail:id=1", []byte("{}"), time.Minute)
  store.Set(ctx, "users:detail:id=1", []byte("{}"), time.Minute)

  store.DeletePrefix(ctx, "courses:")

  if _, ok := store.Get(ctx, "courses:list"); ok {
    t.Fatal("expected courses:list to be deleted")
  }
  if _, ok := store.Get(ctx, "courses:detail:id=1"); ok {
    t.Fatal("expected courses:detail to be deleted")
  }
  if _, ok := store.Get(ctx, "users:detail:id=1"); !ok {
    t.Fatal("expected other namespace to survive")
  }
}
