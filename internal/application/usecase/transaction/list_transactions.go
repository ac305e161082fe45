package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListTransactionsInput represents the input for listing transactions.
// A non-nil Month narrows the result to that calendar month.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Month  *time.Time
	Type   *entity.TransactionType
	Limit  int
	Offset int
}

// ListTransactionsOutput represents the listed transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Total        int64
}

// ListTransactionsUseCase lists ledger entries for a user.
type ListTransactionsUseCase struct {
	txRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(txRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		txRepo: txRepo,
	}
}

// Execute lists transactions, month-scoped when a month is given.
func (uc *ListTransactionsUseCase) Execute(
	ctx context.Context,
	input ListTransactionsInput,
) (*ListTransactionsOutput, error) {
	if input.Month != nil {
		transactions, err := uc.txRepo.FindByMonth(ctx, input.UserID, *input.Month, input.Type)
		if err != nil {
			return nil, fmt.Errorf("failed to list month transactions: %w", err)
		}
		return &ListTransactionsOutput{
			Transactions: transactions,
			Total:        int64(len(transactions)),
		}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	result, err := uc.txRepo.List(ctx, input.UserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{
		Transactions: result.Transactions,
		Total:        result.Total,
	}, nil
}
