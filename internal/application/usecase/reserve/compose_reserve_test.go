// Package reserve contains the reserve composition use case.
package reserve

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
)

func unpaidExpense(amount, remaining int64) valueobject.ReconciledExpense {
	return valueobject.ReconciledExpense{
		Expense: &entity.MandatoryExpense{
			ID:     uuid.New(),
			Amount: decimal.NewFromInt(amount),
		},
		IsPaid:          false,
		RemainingAmount: decimal.NewFromInt(remaining),
	}
}

func paidExpense(amount int64) valueobject.ReconciledExpense {
	return valueobject.ReconciledExpense{
		Expense: &entity.MandatoryExpense{
			ID:     uuid.New(),
			Amount: decimal.NewFromInt(amount),
		},
		IsPaid:          true,
		RemainingAmount: decimal.Zero,
	}
}

func TestComposeReserveUseCase_Execute(t *testing.T) {
	uc := NewComposeReserveUseCase()
	ctx := context.Background()

	t.Run("total is the exact sum of the three components", func(t *testing.T) {
		output, err := uc.Execute(ctx, ComposeReserveInput{
			Balance:            decimal.NewFromInt(10000),
			SavingsRate:        decimal.NewFromInt(10),
			Reconciled:         []valueobject.ReconciledExpense{unpaidExpense(3000, 3000)},
			ManualReserve:      decimal.NewFromInt(500),
			EnableSmartReserve: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		r := output.Reserve
		if !r.SavingsAmount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected savings 1000, got %s", r.SavingsAmount)
		}
		if !r.UnpaidMandatoryTotal.Equal(decimal.NewFromInt(3000)) {
			t.Errorf("expected unpaid total 3000, got %s", r.UnpaidMandatoryTotal)
		}
		if !r.TotalReserved.Equal(decimal.NewFromInt(4500)) {
			t.Errorf("expected total reserved 4500, got %s", r.TotalReserved)
		}
		if !r.AvailableBalance.Equal(decimal.NewFromInt(5500)) {
			t.Errorf("expected available 5500, got %s", r.AvailableBalance)
		}

		sum := r.SavingsAmount.Add(r.UnpaidMandatoryTotal).Add(r.ManualReservedAmount)
		if !r.TotalReserved.Equal(sum) {
			t.Errorf("expected total %s to equal component sum %s", r.TotalReserved, sum)
		}
	})

	t.Run("paid expenses are excluded from the unpaid total", func(t *testing.T) {
		output, err := uc.Execute(ctx, ComposeReserveInput{
			Balance:            decimal.NewFromInt(10000),
			SavingsRate:        decimal.Zero,
			Reconciled:         []valueobject.ReconciledExpense{paidExpense(30000), unpaidExpense(5000, 5000)},
			EnableSmartReserve: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Reserve.UnpaidMandatoryTotal.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected unpaid total 5000, got %s", output.Reserve.UnpaidMandatoryTotal)
		}
	})

	t.Run("partial payments reduce the unpaid total", func(t *testing.T) {
		output, err := uc.Execute(ctx, ComposeReserveInput{
			Balance:            decimal.NewFromInt(10000),
			SavingsRate:        decimal.Zero,
			Reconciled:         []valueobject.ReconciledExpense{unpaidExpense(5000, 2000)},
			EnableSmartReserve: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Reserve.UnpaidMandatoryTotal.Equal(decimal.NewFromInt(2000)) {
			t.Errorf("expected unpaid total 2000, got %s", output.Reserve.UnpaidMandatoryTotal)
		}
	})

	t.Run("smart reserve disabled skips the unpaid total", func(t *testing.T) {
		output, err := uc.Execute(ctx, ComposeReserveInput{
			Balance:            decimal.NewFromInt(10000),
			SavingsRate:        decimal.NewFromInt(10),
			Reconciled:         []valueobject.ReconciledExpense{unpaidExpense(3000, 3000)},
			EnableSmartReserve: false,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Reserve.UnpaidMandatoryTotal.IsZero() {
			t.Errorf("expected zero unpaid total, got %s", output.Reserve.UnpaidMandatoryTotal)
		}
		if !output.Reserve.TotalReserved.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected total reserved 1000, got %s", output.Reserve.TotalReserved)
		}
	})

	t.Run("reserve above balance clamps available at zero but keeps total", func(t *testing.T) {
		output, err := uc.Execute(ctx, ComposeReserveInput{
			Balance:            decimal.NewFromInt(2000),
			SavingsRate:        decimal.NewFromInt(10),
			Reconciled:         []valueobject.ReconciledExpense{unpaidExpense(30000, 30000)},
			EnableSmartReserve: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Reserve.AvailableBalance.IsZero() {
			t.Errorf("expected available clamped to zero, got %s", output.Reserve.AvailableBalance)
		}
		if !output.Reserve.TotalReserved.Equal(decimal.NewFromInt(30200)) {
			t.Errorf("expected total reserved 30200, got %s", output.Reserve.TotalReserved)
		}
	})

	t.Run("negative balance yields zero savings", func(t *testing.T) {
		output, err := uc.Execute(ctx, ComposeReserveInput{
			Balance:     decimal.NewFromInt(-5000),
			SavingsRate: decimal.NewFromInt(10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Reserve.SavingsAmount.IsZero() {
			t.Errorf("expected zero savings on negative balance, got %s", output.Reserve.SavingsAmount)
		}
		if output.Reserve.TotalReserved.IsNegative() {
			t.Errorf("expected non-negative total reserved, got %s", output.Reserve.TotalReserved)
		}
	})

	t.Run("savings rate is clamped to 0..100", func(t *testing.T) {
		output, err := uc.Execute(ctx, ComposeReserveInput{
			Balance:     decimal.NewFromInt(10000),
			SavingsRate: decimal.NewFromInt(150),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Reserve.SavingsAmount.Equal(decimal.NewFromInt(10000)) {
			t.Errorf("expected savings capped at 100%%, got %s", output.Reserve.SavingsAmount)
		}

		output, err = uc.Execute(ctx, ComposeReserveInput{
			Balance:     decimal.NewFromInt(10000),
			SavingsRate: decimal.NewFromInt(-5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Reserve.SavingsAmount.IsZero() {
			t.Errorf("expected zero savings at negative rate, got %s", output.Reserve.SavingsAmount)
		}
	})
}
