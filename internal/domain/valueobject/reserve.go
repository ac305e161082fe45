package valueobject

import "github.com/shopspring/decimal"

// ReserveBreakdown is the composed reserve for a user at a point in time.
// All components are exposed individually; TotalReserved is always their
// exact sum and AvailableBalance is clamped at zero for downstream budgets
// while TotalReserved itself stays unclamped for transparency.
type ReserveBreakdown struct {
	SavingsAmount        decimal.Decimal
	UnpaidMandatoryTotal decimal.Decimal
	ManualReservedAmount decimal.Decimal
	TotalReserved        decimal.Decimal
	AvailableBalance     decimal.Decimal
}
