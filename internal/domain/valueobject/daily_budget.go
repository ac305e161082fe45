package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBudget is the safe-to-spend figure until the next salary date.
type DailyBudget struct {
	Amount          decimal.Decimal
	DaysUntilSalary int // floored at 1, even on a salary day
	NextSalaryDate  time.Time
}
