// Package cache implements the summary cache on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
)

// summaryCache implements the adapter.SummaryCache interface on Redis.
type summaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new Redis-backed summary cache.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &summaryCache{
		client: client,
	}
}

// key builds the per-user, per-day cache key.
func (c *summaryCache) key(userID uuid.UUID, day string) string {
	return fmt.Sprintf("budget:summary:%s:%s", userID, day)
}

func (c *summaryCache) userPattern(userID uuid.UUID) string {
	return fmt.Sprintf("budget:summary:%s:*", userID)
}

// Get returns the cached payload for the user and day.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID, day string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.key(userID, day)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// Set stores the payload with the given TTL.
func (c *summaryCache) Set(ctx context.Context, userID uuid.UUID, day string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(userID, day), payload, ttl).Err()
}

// Invalidate drops any cached summary for the user.
func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	iter := c.client.Scan(ctx, 0, c.userPattern(userID), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
