// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single ledger entry in the family budget.
// Amount is always non-negative; Type carries the direction.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	MemberID        *uuid.UUID // optional family member the entry belongs to
	Date            time.Time
	Type            TransactionType
	Amount          decimal.Decimal
	Category        string
	Note            string
	RawNote         string // text as originally entered, before any cleanup
	LinkedExpenseID *uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	memberID *uuid.UUID,
	date time.Time,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	note string,
	rawNote string,
	linkedExpenseID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		MemberID:        memberID,
		Date:            date,
		Type:            transactionType,
		Amount:          amount,
		Category:        category,
		Note:            note,
		RawNote:         rawNote,
		LinkedExpenseID: linkedExpenseID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsExpense reports whether the transaction is an expense entry.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
}
