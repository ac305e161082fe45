// Package reconciliation contains the mandatory-expense reconciliation use case.
package reconciliation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
)

func newExpense(name string, amount int64, day int, keywords ...string) *entity.MandatoryExpense {
	return &entity.MandatoryExpense{
		ID:       uuid.New(),
		Name:     name,
		Amount:   decimal.NewFromInt(amount),
		Day:      day,
		Keywords: keywords,
	}
}

func newTx(amount int64, note string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:     uuid.New(),
		Type:   entity.TransactionTypeExpense,
		Amount: decimal.NewFromInt(amount),
		Note:   note,
		Date:   date,
	}
}

func TestReconcileExpensesUseCase_Execute(t *testing.T) {
	uc := NewReconcileExpensesUseCase(valueobject.DefaultReserveConfig())
	ctx := context.Background()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("keyword match marks the expense auto paid", func(t *testing.T) {
		rent := newExpense("Rent", 30000, 5, "аренда")

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses:     []*entity.MandatoryExpense{rent},
			Transactions: []*entity.Transaction{newTx(30000, "Аренда квартиры за август", now)},
			Now:          now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		re := output.Expenses[0]
		if !re.IsAutoPaid {
			t.Error("expected expense to be auto paid")
		}
		if !re.IsPaid {
			t.Error("expected expense to be paid")
		}
		if !re.PaidAmount.Equal(decimal.NewFromInt(30000)) {
			t.Errorf("expected paid amount 30000, got %s", re.PaidAmount)
		}
		if !re.RemainingAmount.IsZero() {
			t.Errorf("expected zero remaining, got %s", re.RemainingAmount)
		}
	})

	t.Run("paid within tolerance counts as paid", func(t *testing.T) {
		internet := newExpense("Internet", 3000, 10, "telecom")

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses:     []*entity.MandatoryExpense{internet},
			Transactions: []*entity.Transaction{newTx(2850, "Telecom provider", now)},
			Now:          now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Expenses[0].IsAutoPaid {
			t.Error("expected 2850 of 3000 to count as paid at 95% tolerance")
		}
	})

	t.Run("paid below tolerance stays unpaid with remaining", func(t *testing.T) {
		internet := newExpense("Internet", 3000, 10, "telecom")

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses:     []*entity.MandatoryExpense{internet},
			Transactions: []*entity.Transaction{newTx(2000, "Telecom provider", now)},
			Now:          now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		re := output.Expenses[0]
		if re.IsPaid {
			t.Error("expected expense to stay unpaid below tolerance")
		}
		if !re.RemainingAmount.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected remaining 1000, got %s", re.RemainingAmount)
		}
	})

	t.Run("partial payments accumulate across transactions", func(t *testing.T) {
		utilities := newExpense("Utilities", 5000, 20, "жкх")

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses: []*entity.MandatoryExpense{utilities},
			Transactions: []*entity.Transaction{
				newTx(2000, "ЖКХ вода", now),
				newTx(3000, "ЖКХ электричество", now),
			},
			Now: now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		re := output.Expenses[0]
		if !re.PaidAmount.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("expected paid amount 5000, got %s", re.PaidAmount)
		}
		if !re.IsAutoPaid {
			t.Error("expected accumulated payments to cover the expense")
		}
	})

	t.Run("explicit link matches without keywords", func(t *testing.T) {
		mortgage := newExpense("Mortgage", 45000, 1)
		tx := newTx(45000, "transfer", now)
		tx.LinkedExpenseID = &mortgage.ID

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses:     []*entity.MandatoryExpense{mortgage},
			Transactions: []*entity.Transaction{tx},
			Now:          now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Expenses[0].IsAutoPaid {
			t.Error("expected linked transaction to mark the expense paid")
		}
	})

	t.Run("manual flag marks the expense paid without transactions", func(t *testing.T) {
		cash := newExpense("Kindergarten", 8000, 25, "садик")

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses:   []*entity.MandatoryExpense{cash},
			ManualPaid: map[uuid.UUID]struct{}{cash.ID: {}},
			Now:        now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		re := output.Expenses[0]
		if !re.IsManuallyPaid {
			t.Error("expected expense to be manually paid")
		}
		if re.IsAutoPaid {
			t.Error("expected expense not to be auto paid")
		}
		if !re.IsPaid {
			t.Error("expected expense to be paid")
		}
		if !re.RemainingAmount.IsZero() {
			t.Errorf("expected zero remaining for manually paid expense, got %s", re.RemainingAmount)
		}
	})

	t.Run("unpaid expense past its due day is overdue", func(t *testing.T) {
		rent := newExpense("Rent", 30000, 5, "аренда")
		future := newExpense("Phone", 500, 28, "phone")

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses: []*entity.MandatoryExpense{rent, future},
			Now:      now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, re := range output.Expenses {
			switch re.Expense.Name {
			case "Rent":
				if !re.IsOverdue {
					t.Error("expected rent due day 5 to be overdue on the 15th")
				}
			case "Phone":
				if re.IsOverdue {
					t.Error("expected phone due day 28 not to be overdue on the 15th")
				}
			}
		}
	})

	t.Run("paid expense is never overdue", func(t *testing.T) {
		rent := newExpense("Rent", 30000, 5, "аренда")

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses:     []*entity.MandatoryExpense{rent},
			Transactions: []*entity.Transaction{newTx(30000, "аренда", now)},
			Now:          now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Expenses[0].IsOverdue {
			t.Error("expected paid expense not to be overdue")
		}
	})

	t.Run("unpaid expenses sort first then by due day", func(t *testing.T) {
		paidEarly := newExpense("Rent", 30000, 3, "аренда")
		unpaidLate := newExpense("Utilities", 5000, 20, "жкх")
		unpaidEarly := newExpense("Internet", 3000, 10, "telecom")

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses:     []*entity.MandatoryExpense{paidEarly, unpaidLate, unpaidEarly},
			Transactions: []*entity.Transaction{newTx(30000, "аренда", now)},
			Now:          now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := make([]string, 0, len(output.Expenses))
		for _, re := range output.Expenses {
			got = append(got, re.Expense.Name)
		}

		want := []string{"Internet", "Utilities", "Rent"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("income and nil transactions are ignored", func(t *testing.T) {
		rent := newExpense("Rent", 30000, 5, "аренда")
		salary := &entity.Transaction{
			ID:     uuid.New(),
			Type:   entity.TransactionTypeIncome,
			Amount: decimal.NewFromInt(100000),
			Note:   "аренда возврат",
			Date:   now,
		}

		output, err := uc.Execute(ctx, ReconcileExpensesInput{
			Expenses:     []*entity.MandatoryExpense{rent},
			Transactions: []*entity.Transaction{salary, nil},
			Now:          now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Expenses[0].PaidAmount.IsZero() {
			t.Errorf("expected income to be ignored, got paid %s", output.Expenses[0].PaidAmount)
		}
	})

	t.Run("empty inputs produce empty output", func(t *testing.T) {
		output, err := uc.Execute(ctx, ReconcileExpensesInput{Now: now})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Expenses) != 0 {
			t.Errorf("expected no reconciled expenses, got %d", len(output.Expenses))
		}
	})

	t.Run("overpayment never yields negative remaining", func(t *testing.T) {
		rent := newExpense("Rent", 30000, 5, "аренда")
		cfg := valueobject.DefaultReserveConfig()
		strict := NewReconcileExpensesUseCase(cfg)

		output, err := strict.Execute(ctx, ReconcileExpensesInput{
			Expenses:     []*entity.MandatoryExpense{rent},
			Transactions: []*entity.Transaction{newTx(35000, "аренда", now)},
			Now:          now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		re := output.Expenses[0]
		if re.RemainingAmount.IsNegative() {
			t.Errorf("expected non-negative remaining, got %s", re.RemainingAmount)
		}
		if !re.PaidAmount.Equal(decimal.NewFromInt(35000)) {
			t.Errorf("expected paid amount to keep the full 35000, got %s", re.PaidAmount)
		}
	})
}
