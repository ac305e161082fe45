package override

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
)

// persistTimeout bounds the background persistence call that follows an
// optimistic in-memory mutation.
const persistTimeout = 10 * time.Second

// TogglePaidInput represents the input for toggling a manual paid flag.
type TogglePaidInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
	MonthKey  string
}

// TogglePaidOutput represents the resulting flag state.
type TogglePaidOutput struct {
	ExpenseID uuid.UUID
	MonthKey  string
	IsPaid    bool
}

// TogglePaidUseCase flips a month-scoped manual paid flag. The in-memory
// state is updated before persistence is attempted; persistence failures are
// logged and otherwise belong to the external collaborator.
type TogglePaidUseCase struct {
	store *Store
	repo  adapter.OverrideRepository
	cache adapter.SummaryCache
}

// NewTogglePaidUseCase creates a new TogglePaidUseCase instance.
func NewTogglePaidUseCase(
	store *Store,
	repo adapter.OverrideRepository,
	cache adapter.SummaryCache,
) *TogglePaidUseCase {
	return &TogglePaidUseCase{
		store: store,
		repo:  repo,
		cache: cache,
	}
}

// Execute toggles the flag and signals persistence.
func (uc *TogglePaidUseCase) Execute(
	ctx context.Context,
	input TogglePaidInput,
) (*TogglePaidOutput, error) {
	if !valueobject.MonthKey(input.MonthKey).Valid() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonthKey,
			"invalid month key",
			domainerror.ErrInvalidMonthKey,
		)
	}

	isPaid, err := uc.store.TogglePaid(ctx, input.UserID, input.MonthKey, input.ExpenseID)
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: the toggle already took effect in memory.
	go func() {
		pctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := uc.repo.SetManualPaid(pctx, input.UserID, input.MonthKey, input.ExpenseID, isPaid); err != nil {
			slog.Error("Failed to persist manual paid flag",
				"user_id", input.UserID,
				"expense_id", input.ExpenseID,
				"month_key", input.MonthKey,
				"error", err,
			)
		}
	}()

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("Failed to invalidate budget summary cache", "user_id", input.UserID, "error", err)
		}
	}

	return &TogglePaidOutput{
		ExpenseID: input.ExpenseID,
		MonthKey:  input.MonthKey,
		IsPaid:    isPaid,
	}, nil
}
