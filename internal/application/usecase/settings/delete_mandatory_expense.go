package settings

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
)

// DeleteMandatoryExpenseInput represents the input for deleting a mandatory expense.
type DeleteMandatoryExpenseInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteMandatoryExpenseUseCase removes a mandatory expense from the
// canonical list.
type DeleteMandatoryExpenseUseCase struct {
	settingsRepo adapter.SettingsRepository
	cache        adapter.SummaryCache
}

// NewDeleteMandatoryExpenseUseCase creates a new DeleteMandatoryExpenseUseCase instance.
func NewDeleteMandatoryExpenseUseCase(
	settingsRepo adapter.SettingsRepository,
	cache adapter.SummaryCache,
) *DeleteMandatoryExpenseUseCase {
	return &DeleteMandatoryExpenseUseCase{
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// Execute deletes the expense with ownership verification.
func (uc *DeleteMandatoryExpenseUseCase) Execute(
	ctx context.Context,
	input DeleteMandatoryExpenseInput,
) error {
	if err := uc.settingsRepo.DeleteMandatoryExpense(ctx, input.ID, input.UserID); err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("Failed to invalidate budget summary cache", "user_id", input.UserID, "error", err)
		}
	}

	return nil
}
