package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TogglePaidRequest represents the optional body for toggling a manual paid
// flag. An empty month key means the current month.
type TogglePaidRequest struct {
	MonthKey string `json:"month_key"`
}

// TogglePaidResponse represents the resulting flag state.
type TogglePaidResponse struct {
	ExpenseID uuid.UUID `json:"expense_id"`
	MonthKey  string    `json:"month_key"`
	IsPaid    bool      `json:"is_paid"`
}

// SetReserveRequest represents the body for replacing the manual reserve.
type SetReserveRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// SetReserveResponse represents the stored reserve amount.
type SetReserveResponse struct {
	Amount decimal.Decimal `json:"amount"`
}
