package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionPoint is one simulated day of the cash-flow projection.
type ProjectionPoint struct {
	Date        time.Time
	Balance     decimal.Decimal
	IsSalaryDay bool
	IsBillDay   bool
}

// CashFlowProjection is the result of a day-stepped balance simulation.
// Balances are not clamped at zero: the depth of a shortfall past the danger
// date stays visible.
type CashFlowProjection struct {
	Series     []ProjectionPoint
	DangerDate *time.Time // first date the balance goes negative, if any
	DangerDay  *int       // day index of DangerDate within the series
	MinBalance decimal.Decimal
}
