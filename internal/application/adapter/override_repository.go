package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OverrideState is the persisted form of a user's manual overrides.
type OverrideState struct {
	ManualPaid    map[string][]uuid.UUID // month key -> expense ids
	ManualReserve decimal.Decimal
}

// OverrideRepository persists manual paid flags and the manual reserve
// amount. Persistence is fire-and-forget from the engine's point of view:
// the in-memory state is already updated when these are called.
type OverrideRepository interface {
	// Load retrieves the full override state for a user. A user without any
	// overrides yields an empty state, not an error.
	Load(ctx context.Context, userID uuid.UUID) (*OverrideState, error)

	// SetManualPaid records or clears the manual paid flag for one expense
	// in one month.
	SetManualPaid(ctx context.Context, userID uuid.UUID, monthKey string, expenseID uuid.UUID, paid bool) error

	// SaveManualReserve replaces the manual reserve scalar.
	SaveManualReserve(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error
}
