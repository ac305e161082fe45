package valueobject

import "github.com/shopspring/decimal"

// ReserveConfig contains the tunable heuristics of the reserve engine,
// kept as named, overridable values rather than scattered literals.
type ReserveConfig struct {
	// PaidTolerance is the fraction of the expected amount at which a bill
	// counts as paid. 0.95 = paying 95% of the expected figure settles it.
	PaidTolerance decimal.Decimal

	// DefaultHorizonDays is the cash-flow simulation horizon used when the
	// caller does not specify one.
	DefaultHorizonDays int

	// MaxHorizonDays bounds the simulation horizon.
	MaxHorizonDays int

	// FallbackSalaryDay is substituted when the user configured no salary
	// dates at all.
	FallbackSalaryDay int
}

// DefaultReserveConfig returns the default reserve configuration.
func DefaultReserveConfig() ReserveConfig {
	return ReserveConfig{
		PaidTolerance:      decimal.NewFromFloat(0.95),
		DefaultHorizonDays: 45,
		MaxHorizonDays:     365,
		FallbackSalaryDay:  1,
	}
}

// ClampSavingsRate clamps a savings rate to the valid [0,100] percent range.
// Upstream validation is not assumed.
func ClampSavingsRate(rate decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if rate.IsNegative() {
		return decimal.Zero
	}
	if rate.GreaterThan(hundred) {
		return hundred
	}
	return rate
}
