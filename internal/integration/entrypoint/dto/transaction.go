package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
)

// CreateTransactionRequest represents the body for recording a transaction.
type CreateTransactionRequest struct {
	Date            string          `json:"date" binding:"required"` // YYYY-MM-DD
	Type            string          `json:"type" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Note            string          `json:"note"`
	RawNote         string          `json:"raw_note"`
	MemberID        *uuid.UUID      `json:"member_id"`
	LinkedExpenseID *uuid.UUID      `json:"linked_expense_id"`
}

// TransactionResponse represents one ledger entry.
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	Date            string          `json:"date"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Category        string          `json:"category"`
	Note            string          `json:"note"`
	RawNote         string          `json:"raw_note"`
	MemberID        *uuid.UUID      `json:"member_id,omitempty"`
	LinkedExpenseID *uuid.UUID      `json:"linked_expense_id,omitempty"`
}

// ListTransactionsResponse represents a page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

// TransactionResponseFromEntity converts a Transaction entity to its
// response form.
func TransactionResponseFromEntity(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              tx.ID,
		Date:            tx.Date.Format(time.DateOnly),
		Type:            string(tx.Type),
		Amount:          tx.Amount,
		Category:        tx.Category,
		Note:            tx.Note,
		RawNote:         tx.RawNote,
		MemberID:        tx.MemberID,
		LinkedExpenseID: tx.LinkedExpenseID,
	}
}
