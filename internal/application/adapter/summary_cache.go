package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SummaryCache caches serialized budget summaries per user and calendar day.
// Keying by day makes a stale entry impossible to carry across a date
// rollover; mutations invalidate explicitly within the day.
type SummaryCache interface {
	// Get returns the cached payload for the user and day, or ok=false on a miss.
	Get(ctx context.Context, userID uuid.UUID, day string) (payload []byte, ok bool, err error)

	// Set stores the payload for the user and day with the given TTL.
	Set(ctx context.Context, userID uuid.UUID, day string, payload []byte, ttl time.Duration) error

	// Invalidate drops any cached summary for the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
