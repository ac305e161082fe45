// Package budget contains the daily budget and budget summary use cases.
package budget

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
)

// DailyBudgetInput represents the input for the daily budget calculation.
type DailyBudgetInput struct {
	AvailableBalance decimal.Decimal
	SalaryDates      []int // days of month; empty falls back to the configured day
	Now              time.Time
}

// DailyBudgetOutput represents the computed daily budget.
type DailyBudgetOutput struct {
	Budget valueobject.DailyBudget
}

// DailyBudgetUseCase derives the days remaining until the next salary date
// and divides the available balance by that count. It holds no state between
// calls: balance, reserve or date changes simply mean a fresh Execute.
type DailyBudgetUseCase struct {
	config valueobject.ReserveConfig
}

// NewDailyBudgetUseCase creates a new DailyBudgetUseCase instance.
func NewDailyBudgetUseCase(config valueobject.ReserveConfig) *DailyBudgetUseCase {
	return &DailyBudgetUseCase{
		config: config,
	}
}

// Execute computes the safe daily spend until the next salary date.
func (uc *DailyBudgetUseCase) Execute(
	_ context.Context,
	input DailyBudgetInput,
) (*DailyBudgetOutput, error) {
	next := NextSalaryDate(input.SalaryDates, input.Now, uc.config.FallbackSalaryDay)

	days := int(math.Ceil(next.Sub(input.Now).Hours() / 24))
	if days < 1 {
		days = 1
	}

	return &DailyBudgetOutput{
		Budget: valueobject.DailyBudget{
			Amount:          input.AvailableBalance.Div(decimal.NewFromInt(int64(days))),
			DaysUntilSalary: days,
			NextSalaryDate:  next,
		},
	}, nil
}

// NextSalaryDate returns the first configured salary day strictly after
// now's day-of-month within the current month; when none qualifies, the
// smallest configured day in the following month. Days past the end of a
// short month normalize forward, matching time.Date semantics.
func NextSalaryDate(salaryDates []int, now time.Time, fallbackDay int) time.Time {
	days := make([]int, 0, len(salaryDates))
	for _, d := range salaryDates {
		if d >= 1 && d <= 31 {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		days = []int{fallbackDay}
	}
	sort.Ints(days)

	for _, d := range days {
		if d > now.Day() {
			return time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, now.Location())
		}
	}
	return time.Date(now.Year(), now.Month()+1, days[0], 0, 0, 0, 0, now.Location())
}
