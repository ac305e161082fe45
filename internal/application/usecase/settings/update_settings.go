package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
)

// UpdateSettingsInput represents the input for updating settings.
type UpdateSettingsInput struct {
	UserID             uuid.UUID
	SavingsRate        decimal.Decimal
	SalaryDates        []int
	EnableSmartReserve bool
	InitialBalance     decimal.Decimal
	InitialBalanceDate time.Time
}

// UpdateSettingsOutput represents the stored settings.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase updates the scalar budget settings. The savings rate
// is clamped to [0,100] here as well; upstream validation is not assumed.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	cache        adapter.SummaryCache
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(
	settingsRepo adapter.SettingsRepository,
	cache adapter.SummaryCache,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// Execute validates and stores the new settings.
func (uc *UpdateSettingsUseCase) Execute(
	ctx context.Context,
	input UpdateSettingsInput,
) (*UpdateSettingsOutput, error) {
	salaryDates, err := normalizeSalaryDates(input.SalaryDates)
	if err != nil {
		return nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx, input.UserID)
	if err != nil {
		if !errors.Is(err, domainerror.ErrSettingsNotFound) {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = entity.DefaultSettings(input.UserID)
	}

	settings.SavingsRate = valueobject.ClampSavingsRate(input.SavingsRate)
	settings.SalaryDates = salaryDates
	settings.EnableSmartReserve = input.EnableSmartReserve
	settings.InitialBalance = input.InitialBalance
	settings.InitialBalanceDate = input.InitialBalanceDate
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, input.UserID); err != nil {
			slog.Warn("Failed to invalidate budget summary cache", "user_id", input.UserID, "error", err)
		}
	}

	return &UpdateSettingsOutput{Settings: settings}, nil
}

// normalizeSalaryDates validates, deduplicates and sorts the salary days.
func normalizeSalaryDates(dates []int) ([]int, error) {
	seen := make(map[int]struct{}, len(dates))
	out := make([]int, 0, len(dates))
	for _, d := range dates {
		if d < 1 || d > 31 {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidSalaryDate,
				"invalid salary date",
				domainerror.ErrInvalidSalaryDate,
			)
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Ints(out)
	return out, nil
}
