// Package cache implements the summary cache on Redis.
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *summaryCache) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, &summaryCache{client: client}
}

func TestSummaryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss before set, hit after", func(t *testing.T) {
		_, cache := newTestCache(t)
		userID := uuid.New()

		_, ok, err := cache.Get(ctx, userID, "2026-08-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("expected a cache miss")
		}

		if err := cache.Set(ctx, userID, "2026-08-15", []byte(`{"balance":"10000"}`), time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		payload, ok, err := cache.Get(ctx, userID, "2026-08-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected a cache hit")
		}
		if string(payload) != `{"balance":"10000"}` {
			t.Errorf("unexpected payload %s", payload)
		}
	})

	t.Run("entries expire with their TTL", func(t *testing.T) {
		mr, cache := newTestCache(t)
		userID := uuid.New()

		if err := cache.Set(ctx, userID, "2026-08-15", []byte("x"), time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mr.FastForward(2 * time.Minute)

		_, ok, err := cache.Get(ctx, userID, "2026-08-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected the entry to have expired")
		}
	})

	t.Run("keys are scoped per day", func(t *testing.T) {
		_, cache := newTestCache(t)
		userID := uuid.New()

		if err := cache.Set(ctx, userID, "2026-08-15", []byte("today"), time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, ok, err := cache.Get(ctx, userID, "2026-08-16")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected no entry for the next day")
		}
	})

	t.Run("invalidate drops all entries for the user only", func(t *testing.T) {
		_, cache := newTestCache(t)
		user1 := uuid.New()
		user2 := uuid.New()

		if err := cache.Set(ctx, user1, "2026-08-15", []byte("a"), time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Set(ctx, user2, "2026-08-15", []byte("b"), time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := cache.Invalidate(ctx, user1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, ok, err := cache.Get(ctx, user1, "2026-08-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected user1 entry to be gone")
		}

		_, ok, err = cache.Get(ctx, user2, "2026-08-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Error("expected user2 entry to survive")
		}
	})
}
