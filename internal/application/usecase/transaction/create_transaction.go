// Package transaction contains ledger transaction use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
)

// CreateTransactionInput represents the input for recording a transaction.
type CreateTransactionInput struct {
	UserID          uuid.UUID
	MemberID        *uuid.UUID
	Date            time.Time
	Type            entity.TransactionType
	Amount          decimal.Decimal
	Category        string
	Note            string
	RawNote         string
	LinkedExpenseID *uuid.UUID
}

// CreateTransactionOutput represents the recorded transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase records a ledger entry. Amounts are non-negative;
// the type carries the direction.
type CreateTransactionUseCase struct {
	txRepo adapter.TransactionRepository
	cache  adapter.SummaryCache
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	txRepo adapter.TransactionRepository,
	cache adapter.SummaryCache,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		txRepo: txRepo,
		cache:  cache,
	}
}

// Execute validates and stores the transaction.
func (uc *CreateTransactionUseCase) Execute(
	ctx context.Context,
	input CreateTransactionInput,
) (*CreateTransactionOutput, error) {
	if input.Type != entity.TransactionTypeIncome && input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"invalid transaction type",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"transaction amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDate,
			"transaction date is required",
			domainerror.ErrMissingDate,
		)
	}

	rawNote := input.RawNote
	if rawNote == "" {
		rawNote = input.Note
	}

	tx := entity.NewTransaction(
		input.UserID,
		input.MemberID,
		input.Date,
		input.Type,
		input.Amount,
		input.Category,
		input.Note,
		rawNote,
		input.LinkedExpenseID,
	)

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("Failed to invalidate budget summary cache", "user_id", input.UserID, "error", err)
		}
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}
