package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
)

// SettingsRepository defines the interface for settings persistence operations.
type SettingsRepository interface {
	// Get retrieves the settings for a user, including the mandatory-expense
	// list and the persisted manual overrides.
	// Returns domainerror.ErrSettingsNotFound when no row exists.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Settings, error)

	// Save upserts the scalar settings fields (rates, salary dates, flags,
	// initial balance). Mandatory expenses and manual overrides have their
	// own operations.
	Save(ctx context.Context, settings *entity.Settings) error

	// SaveMandatoryExpense upserts one mandatory expense.
	SaveMandatoryExpense(ctx context.Context, expense *entity.MandatoryExpense) error

	// DeleteMandatoryExpense removes a mandatory expense with ownership
	// verification. Returns domainerror.ErrExpenseNotFound when absent.
	DeleteMandatoryExpense(ctx context.Context, id, userID uuid.UUID) error
}
