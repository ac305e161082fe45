// Package forecast contains the cash-flow simulation use case.
package forecast

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	domainerror "github.com/Galogen4eg/budget-backend/internal/domain/error"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
)

// ProjectCashFlowInput represents the input for the cash-flow simulation.
type ProjectCashFlowInput struct {
	Balance     decimal.Decimal
	DailySpend  decimal.Decimal
	Income      decimal.Decimal // simulated salary amount per salary date
	HorizonDays int             // 0 means the configured default
	Expenses    []*entity.MandatoryExpense
	SalaryDates []int
	SavingsRate decimal.Decimal // percent; the savings cut is withheld from income
	Now         time.Time
}

// ProjectCashFlowOutput represents the simulated balance trajectory.
type ProjectCashFlowOutput struct {
	Projection valueobject.CashFlowProjection
}

// ProjectCashFlowUseCase runs an independent day-stepped projection of the
// balance over a horizon: simulated daily spend every day, full bill amounts
// on their due days, net salary income on salary days. It is a stateless
// recomputation on every call and never clamps the balance at zero, so the
// depth of a shortfall stays visible past the danger date.
type ProjectCashFlowUseCase struct {
	config valueobject.ReserveConfig
}

// NewProjectCashFlowUseCase creates a new ProjectCashFlowUseCase instance.
func NewProjectCashFlowUseCase(config valueobject.ReserveConfig) *ProjectCashFlowUseCase {
	return &ProjectCashFlowUseCase{
		config: config,
	}
}

// Execute simulates the balance day by day over the horizon (inclusive).
func (uc *ProjectCashFlowUseCase) Execute(
	_ context.Context,
	input ProjectCashFlowInput,
) (*ProjectCashFlowOutput, error) {
	horizon := input.HorizonDays
	if horizon == 0 {
		horizon = uc.config.DefaultHorizonDays
	}
	if err := uc.validate(input, horizon); err != nil {
		return nil, err
	}

	salaryDays := make(map[int]struct{}, len(input.SalaryDates))
	for _, d := range input.SalaryDates {
		if d >= 1 && d <= 31 {
			salaryDays[d] = struct{}{}
		}
	}

	rate := valueobject.ClampSavingsRate(input.SavingsRate)
	netIncomeFactor := decimal.NewFromInt(1).Sub(rate.Div(decimal.NewFromInt(100)))
	netIncome := input.Income.Mul(netIncomeFactor)

	start := time.Date(
		input.Now.Year(), input.Now.Month(), input.Now.Day(),
		0, 0, 0, 0, input.Now.Location(),
	)

	balance := input.Balance
	series := make([]valueobject.ProjectionPoint, 0, horizon+1)
	var dangerDate *time.Time
	var dangerDay *int
	minBalance := balance

	for i := 0; i <= horizon; i++ {
		date := start.AddDate(0, 0, i)

		balance = balance.Sub(input.DailySpend)

		isBillDay := false
		for _, expense := range input.Expenses {
			if expense.Day != date.Day() {
				continue
			}
			// Bills are always charged in full on their due day, even when
			// reconciled as paid this month; the reserve covers the current
			// occurrence, the projection covers the next ones.
			balance = balance.Sub(expense.Amount)
			isBillDay = true
		}

		isSalaryDay := false
		if _, ok := salaryDays[date.Day()]; ok {
			balance = balance.Add(netIncome)
			isSalaryDay = true
		}

		if i == 0 || balance.LessThan(minBalance) {
			minBalance = balance
		}
		if dangerDate == nil && balance.IsNegative() {
			d := date
			day := i
			dangerDate = &d
			dangerDay = &day
		}

		series = append(series, valueobject.ProjectionPoint{
			Date:        date,
			Balance:     balance,
			IsSalaryDay: isSalaryDay,
			IsBillDay:   isBillDay,
		})
	}

	return &ProjectCashFlowOutput{
		Projection: valueobject.CashFlowProjection{
			Series:     series,
			DangerDate: dangerDate,
			DangerDay:  dangerDay,
			MinBalance: minBalance,
		},
	}, nil
}

func (uc *ProjectCashFlowUseCase) validate(input ProjectCashFlowInput, horizon int) error {
	if horizon < 1 || horizon > uc.config.MaxHorizonDays {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidHorizon,
			"invalid forecast horizon",
			domainerror.ErrInvalidHorizon,
		)
	}
	if input.DailySpend.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeSimulatedSpend,
			"simulated daily spend must not be negative",
			domainerror.ErrNegativeSimulatedSpend,
		)
	}
	if input.Income.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeSimulatedIncome,
			"simulated income must not be negative",
			domainerror.ErrNegativeSimulatedIncome,
		)
	}
	return nil
}
