package override

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
)

// SetReserveInput represents the input for replacing the manual reserve.
type SetReserveInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// SetReserveOutput represents the stored reserve amount.
type SetReserveOutput struct {
	Amount decimal.Decimal
}

// SetReserveUseCase replaces the manual reserve scalar. The scalar persists
// indefinitely until explicitly changed; it is not month-scoped.
type SetReserveUseCase struct {
	store *Store
	repo  adapter.OverrideRepository
	cache adapter.SummaryCache
}

// NewSetReserveUseCase creates a new SetReserveUseCase instance.
func NewSetReserveUseCase(
	store *Store,
	repo adapter.OverrideRepository,
	cache adapter.SummaryCache,
) *SetReserveUseCase {
	return &SetReserveUseCase{
		store: store,
		repo:  repo,
		cache: cache,
	}
}

// Execute applies the new amount in memory and signals persistence.
func (uc *SetReserveUseCase) Execute(
	ctx context.Context,
	input SetReserveInput,
) (*SetReserveOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeReserve,
			"manual reserve must not be negative",
			domainerror.ErrNegativeReserve,
		)
	}

	if err := uc.store.SetReserve(ctx, input.UserID, input.Amount); err != nil {
		return nil, err
	}

	go func() {
		pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := uc.repo.SaveManualReserve(pctx, input.UserID, input.Amount); err != nil {
			slog.Error("Failed to persist manual reserve",
				"user_id", input.UserID,
				"error", err,
			)
		}
	}()

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("Failed to invalidate budget summary cache", "user_id", input.UserID, "error", err)
		}
	}

	return &SetReserveOutput{Amount: input.Amount}, nil
}
