// Package reconciliation contains the mandatory-expense reconciliation use case.
package reconciliation

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
	"github.com/Galogen4eg/budget-backend/internal/domain/valueobject"
)

// ReconcileExpensesInput represents the input for reconciling mandatory expenses.
// Expenses and Transactions are expected to be scoped (member/household view,
// current month, expense type) by the caller; the use case stays scope-agnostic.
type ReconcileExpensesInput struct {
	Expenses     []*entity.MandatoryExpense
	Transactions []*entity.Transaction
	ManualPaid   map[uuid.UUID]struct{} // manual flags for the current month key
	Now          time.Time
}

// ReconcileExpensesOutput represents the output of reconciliation.
type ReconcileExpensesOutput struct {
	Expenses []valueobject.ReconciledExpense
}

// ReconcileExpensesUseCase matches the current month's transactions to
// mandatory expenses and derives their paid/unpaid status.
type ReconcileExpensesUseCase struct {
	config valueobject.ReserveConfig
}

// NewReconcileExpensesUseCase creates a new ReconcileExpensesUseCase instance.
func NewReconcileExpensesUseCase(config valueobject.ReserveConfig) *ReconcileExpensesUseCase {
	return &ReconcileExpensesUseCase{
		config: config,
	}
}

// Execute reconciles the given expenses against the given transactions.
// It is a pure computation: no I/O, tolerant of empty collections.
func (uc *ReconcileExpensesUseCase) Execute(
	_ context.Context,
	input ReconcileExpensesInput,
) (*ReconcileExpensesOutput, error) {
	reconciled := make([]valueobject.ReconciledExpense, 0, len(input.Expenses))

	for _, expense := range input.Expenses {
		paidAmount := uc.paidAmount(expense, input.Transactions)

		_, manuallyPaid := input.ManualPaid[expense.ID]
		autoPaid := valueobject.IsPaidAmount(uc.config, paidAmount, expense.Amount)
		isPaid := autoPaid || manuallyPaid

		remaining := decimal.Zero
		if !isPaid {
			remaining = expense.Amount.Sub(paidAmount)
			if remaining.IsNegative() {
				remaining = decimal.Zero
			}
		}

		reconciled = append(reconciled, valueobject.ReconciledExpense{
			Expense:         expense,
			PaidAmount:      paidAmount,
			IsAutoPaid:      autoPaid,
			IsManuallyPaid:  manuallyPaid,
			IsPaid:          isPaid,
			RemainingAmount: remaining,
			IsOverdue:       !isPaid && input.Now.Day() > expense.Day,
		})
	}

	// Unpaid bills first, then ascending due day.
	sort.SliceStable(reconciled, func(i, j int) bool {
		if reconciled[i].IsPaid != reconciled[j].IsPaid {
			return !reconciled[i].IsPaid
		}
		return reconciled[i].Expense.Day < reconciled[j].Expense.Day
	})

	return &ReconcileExpensesOutput{Expenses: reconciled}, nil
}

// paidAmount sums the expense-type transactions matching one mandatory expense.
func (uc *ReconcileExpensesUseCase) paidAmount(
	expense *entity.MandatoryExpense,
	transactions []*entity.Transaction,
) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range transactions {
		if tx == nil || !tx.IsExpense() || tx.Date.IsZero() {
			continue
		}
		if valueobject.MatchesTransaction(expense, tx) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}
