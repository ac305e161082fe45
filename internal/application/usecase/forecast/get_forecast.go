package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/application/adapter"
	"github.com/Galogen4eg/budget-backend/internal/application/usecase/budget"
	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
)

// GetForecastInput represents the input for the what-if forecast endpoint.
// Nil DailySpend means "spend exactly the computed safe daily amount"; nil
// Income means no simulated salary.
type GetForecastInput struct {
	UserID      uuid.UUID
	Now         time.Time
	DailySpend  *decimal.Decimal
	Income      *decimal.Decimal
	HorizonDays int
}

// ForecastPointView is one simulated day in the response series.
type ForecastPointView struct {
	Date        time.Time       `json:"date"`
	Balance     decimal.Decimal `json:"balance"`
	IsSalaryDay bool            `json:"is_salary_day"`
	IsBillDay   bool            `json:"is_bill_day"`
}

// GetForecastOutput represents the simulated trajectory and its parameters.
type GetForecastOutput struct {
	HorizonDays int                 `json:"horizon_days"`
	DailySpend  decimal.Decimal     `json:"daily_spend"`
	Income      decimal.Decimal     `json:"income"`
	Series      []ForecastPointView `json:"series"`
	DangerDate  *time.Time          `json:"danger_date,omitempty"`
	DangerDay   *int                `json:"danger_day,omitempty"`
	MinBalance  decimal.Decimal     `json:"min_balance"`
}

// GetForecastUseCase resolves the simulation parameters from the user's
// current budget state and runs the projection. The default daily spend is
// the daily budget output, so the default trajectory represents spending
// exactly the computed safe amount.
type GetForecastUseCase struct {
	settingsRepo adapter.SettingsRepository
	summaryUC    *budget.GetBudgetSummaryUseCase
	projectUC    *ProjectCashFlowUseCase
}

// NewGetForecastUseCase creates a new GetForecastUseCase instance.
func NewGetForecastUseCase(
	settingsRepo adapter.SettingsRepository,
	summaryUC *budget.GetBudgetSummaryUseCase,
	projectUC *ProjectCashFlowUseCase,
) *GetForecastUseCase {
	return &GetForecastUseCase{
		settingsRepo: settingsRepo,
		summaryUC:    summaryUC,
		projectUC:    projectUC,
	}
}

// Execute resolves defaults and runs the day-stepped simulation.
func (uc *GetForecastUseCase) Execute(
	ctx context.Context,
	input GetForecastInput,
) (*GetForecastOutput, error) {
	summary, err := uc.summaryUC.Execute(ctx, budget.GetBudgetSummaryInput{
		UserID: input.UserID,
		Now:    input.Now,
	})
	if err != nil {
		return nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSettingsNotFound) {
			settings = entity.DefaultSettings(input.UserID)
		} else {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
	}

	spend := summary.DailyBudget.Amount
	if input.DailySpend != nil {
		spend = *input.DailySpend
	}
	income := decimal.Zero
	if input.Income != nil {
		income = *input.Income
	}

	projected, err := uc.projectUC.Execute(ctx, ProjectCashFlowInput{
		Balance:     summary.Balance,
		DailySpend:  spend,
		Income:      income,
		HorizonDays: input.HorizonDays,
		Expenses:    settings.MandatoryExpenses,
		SalaryDates: settings.SalaryDates,
		SavingsRate: settings.SavingsRate,
		Now:         input.Now,
	})
	if err != nil {
		return nil, err
	}

	series := make([]ForecastPointView, 0, len(projected.Projection.Series))
	for _, p := range projected.Projection.Series {
		series = append(series, ForecastPointView{
			Date:        p.Date,
			Balance:     p.Balance,
			IsSalaryDay: p.IsSalaryDay,
			IsBillDay:   p.IsBillDay,
		})
	}

	return &GetForecastOutput{
		HorizonDays: len(series) - 1,
		DailySpend:  spend,
		Income:      income,
		Series:      series,
		DangerDate:  projected.Projection.DangerDate,
		DangerDay:   projected.Projection.DangerDay,
		MinBalance:  projected.Projection.MinBalance,
	}, nil
}
