// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence operations.
type TransactionRepository interface {
	// Create stores a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID with ownership verification.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByMonth retrieves the user's transactions whose date falls into the
	// month containing the given date. When transactionType is non-nil only
	// that type is returned.
	FindByMonth(
		ctx context.Context,
		userID uuid.UUID,
		month time.Time,
		transactionType *entity.TransactionType,
	) ([]*entity.Transaction, error)

	// List retrieves transactions for a user ordered by date descending.
	List(ctx context.Context, userID uuid.UUID, limit, offset int) (*entity.TransactionListResult, error)

	// LedgerSum computes the signed sum of the user's transactions dated on
	// or after since (income positive, expense negative). A zero since sums
	// everything. The engine consumes it as a precomputed figure and never
	// derives the balance itself.
	LedgerSum(ctx context.Context, userID uuid.UUID, since time.Time) (decimal.Decimal, error)
}
