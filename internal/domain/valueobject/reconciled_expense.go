package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
)

// ReconciledExpense is the derived paid/unpaid status of one mandatory
// expense for the current month. It is never persisted.
type ReconciledExpense struct {
	Expense         *entity.MandatoryExpense
	PaidAmount      decimal.Decimal
	IsAutoPaid      bool
	IsManuallyPaid  bool
	IsPaid          bool
	RemainingAmount decimal.Decimal
	IsOverdue       bool
}

// MatchesTransaction reports whether a transaction belongs to the given
// mandatory expense. An explicit link always matches; otherwise any keyword
// must be a case-insensitive substring of the note or the raw note. No
// tokenization or fuzzy scoring.
func MatchesTransaction(expense *entity.MandatoryExpense, tx *entity.Transaction) bool {
	if tx.LinkedExpenseID != nil && *tx.LinkedExpenseID == expense.ID {
		return true
	}

	if len(expense.Keywords) == 0 {
		return false
	}

	note := strings.ToLower(tx.Note)
	rawNote := strings.ToLower(tx.RawNote)
	for _, keyword := range expense.Keywords {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		if kw == "" {
			continue
		}
		if strings.Contains(note, kw) || strings.Contains(rawNote, kw) {
			return true
		}
	}
	return false
}

// IsPaidAmount reports whether paid covers the expected amount within the
// configured tolerance.
func IsPaidAmount(config ReserveConfig, paid, expected decimal.Decimal) bool {
	return paid.GreaterThanOrEqual(expected.Mul(config.PaidTolerance))
}
