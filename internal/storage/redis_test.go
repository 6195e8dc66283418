package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"tastebite/internal/service"
)

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client)
}

func TestRedisStore_SaveLoad(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	payload := []byte(`[{"id":"ORD-123456"}]`)
	if err := store.Save(ctx, "orders", payload); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load(ctx, "orders")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestRedisStore_LoadMissingKey(t *testing.T) {
	store := setupRedisStore(t)

	_, err := store.Load(context.Background(), "orders")
	if !errors.Is(err, service.ErrNoSavedState) {
		t.Fatalf("expected ErrNoSavedState, got %v", err)
	}
}

func TestRedisStore_Delete(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "user", []byte(`{"id":"u1"}`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(ctx, "user"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, err := store.Load(ctx, "user")
	if !errors.Is(err, service.ErrNoSavedState) {
		t.Fatalf("expected ErrNoSavedState after delete, got %v", err)
	}
}

func TestRedisStore_KeysAreIndependent(t *testing.T) {
	store := setupRedisStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "favorites", []byte(`["1","3"]`)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	_, err := store.Load(ctx, "addresses")
	if !errors.Is(err, service.ErrNoSavedState) {
		t.Fatalf("expected addresses to stay empty, got %v", err)
	}

	got, err := store.Load(ctx, "favorites")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(got) != `["1","3"]` {
		t.Fatalf("unexpected favorites payload: %s", got)
	}
}
