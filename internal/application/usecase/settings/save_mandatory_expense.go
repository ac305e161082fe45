package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
)

// SaveMandatoryExpenseInput represents the input for creating or updating a
// mandatory expense. A nil ID means create.
type SaveMandatoryExpenseInput struct {
	UserID   uuid.UUID
	ID       *uuid.UUID
	Name     string
	Amount   decimal.Decimal
	Day      int
	Keywords []string
	MemberID *uuid.UUID
	Remind   bool
}

// SaveMandatoryExpenseOutput represents the stored expense.
type SaveMandatoryExpenseOutput struct {
	Expense *entity.MandatoryExpense
}

// SaveMandatoryExpenseUseCase upserts one mandatory expense in the
// user-managed canonical list.
type SaveMandatoryExpenseUseCase struct {
	settingsRepo adapter.SettingsRepository
	cache        adapter.SummaryCache
}

// NewSaveMandatoryExpenseUseCase creates a new SaveMandatoryExpenseUseCase instance.
func NewSaveMandatoryExpenseUseCase(
	settingsRepo adapter.SettingsRepository,
	cache adapter.SummaryCache,
) *SaveMandatoryExpenseUseCase {
	return &SaveMandatoryExpenseUseCase{
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// Execute validates and stores the mandatory expense.
func (uc *SaveMandatoryExpenseUseCase) Execute(
	ctx context.Context,
	input SaveMandatoryExpenseInput,
) (*SaveMandatoryExpenseOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeExpenseNameRequired,
			"expense name is required",
			domainerror.ErrExpenseNameRequired,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeNegativeExpenseAmount,
			"expense amount must not be negative",
			domainerror.ErrNegativeExpenseAmount,
		)
	}
	if input.Day < 1 || input.Day > 31 {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidExpenseDay,
			"expense day must be between 1 and 31",
			domainerror.ErrInvalidExpenseDay,
		)
	}

	keywords := make([]string, 0, len(input.Keywords))
	for _, kw := range input.Keywords {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}

	expense := entity.NewMandatoryExpense(
		input.UserID, name, input.Amount, input.Day, keywords, input.MemberID, input.Remind,
	)
	if input.ID != nil {
		expense.ID = *input.ID
		expense.UpdatedAt = time.Now().UTC()
	}

	if err := uc.settingsRepo.SaveMandatoryExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save mandatory expense: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("Failed to invalidate budget summary cache", "user_id", input.UserID, "error", err)
		}
	}

	return &SaveMandatoryExpenseOutput{Expense: expense}, nil
}
