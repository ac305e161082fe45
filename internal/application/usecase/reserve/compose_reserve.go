// Package reserve contains the reserve composition use case.
package reserve

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
)

// ComposeReserveInput represents the input for composing the reserve.
type ComposeReserveInput struct {
	Balance            decimal.Decimal // precomputed current balance (ledger sum + initial balance)
	SavingsRate        decimal.Decimal // percent; clamped here, upstream validation is not assumed
	Reconciled         []valueobject.ReconciledExpense
	ManualReserve      decimal.Decimal
	EnableSmartReserve bool
}

// ComposeReserveOutput represents the composed reserve breakdown.
type ComposeReserveOutput struct {
	Reserve valueobject.ReserveBreakdown
}

// ComposeReserveUseCase aggregates the savings cut, the unpaid mandatory
// total and the manual reserve into a total reserved figure and an available
// balance.
type ComposeReserveUseCase struct{}

// NewComposeReserveUseCase creates a new ComposeReserveUseCase instance.
func NewComposeReserveUseCase() *ComposeReserveUseCase {
	return &ComposeReserveUseCase{}
}

// Execute composes the reserve. TotalReserved is the exact sum of its three
// components; AvailableBalance is clamped at zero.
func (uc *ComposeReserveUseCase) Execute(
	_ context.Context,
	input ComposeReserveInput,
) (*ComposeReserveOutput, error) {
	rate := valueobject.ClampSavingsRate(input.SavingsRate)

	// The savings cut is based on the current balance, not income, so it
	// stays stable when income is irregular.
	savings := input.Balance.Mul(rate).Div(decimal.NewFromInt(100))
	if savings.IsNegative() {
		savings = decimal.Zero
	}

	unpaid := decimal.Zero
	if input.EnableSmartReserve {
		for _, re := range input.Reconciled {
			if !re.IsPaid {
				unpaid = unpaid.Add(re.RemainingAmount)
			}
		}
	}

	total := savings.Add(unpaid).Add(input.ManualReserve)

	available := input.Balance.Sub(total)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return &ComposeReserveOutput{
		Reserve: valueobject.ReserveBreakdown{
			SavingsAmount:        savings,
			UnpaidMandatoryTotal: unpaid,
			ManualReservedAmount: input.ManualReserve,
			TotalReserved:        total,
			AvailableBalance:     available,
		},
	}, nil
}
