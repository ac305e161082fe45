package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Galogen4eg/budget-backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the body for updating budget settings.
type UpdateSettingsRequest struct {
	SavingsRate        decimal.Decimal `json:"savings_rate"`
	SalaryDates        []int           `json:"salary_dates"`
	EnableSmartReserve bool            `json:"enable_smart_reserve"`
	InitialBalance     decimal.Decimal `json:"initial_balance"`
	InitialBalanceDate string          `json:"initial_balance_date"` // YYYY-MM-DD
}

// MandatoryExpenseRequest represents the body for creating or updating a
// mandatory expense.
type MandatoryExpenseRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Day      int             `json:"day" binding:"required"`
	Keywords []string        `json:"keywords"`
	MemberID *uuid.UUID      `json:"member_id"`
	Remind   bool            `json:"remind"`
}

// MandatoryExpenseResponse represents one mandatory expense.
type MandatoryExpenseResponse struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Day      int             `json:"day"`
	Keywords []string        `json:"keywords"`
	MemberID *uuid.UUID      `json:"member_id,omitempty"`
	Remind   bool            `json:"remind"`
}

// SettingsResponse represents the user's budget settings.
type SettingsResponse struct {
	SavingsRate          decimal.Decimal            `json:"savings_rate"`
	SalaryDates          []int                      `json:"salary_dates"`
	EnableSmartReserve   bool                       `json:"enable_smart_reserve"`
	ManualReservedAmount decimal.Decimal            `json:"manual_reserved_amount"`
	InitialBalance       decimal.Decimal            `json:"initial_balance"`
	InitialBalanceDate   string                     `json:"initial_balance_date"`
	MandatoryExpenses    []MandatoryExpenseResponse `json:"mandatory_expenses"`
}

// SettingsResponseFromEntity converts a Settings entity to its response form.
func SettingsResponseFromEntity(settings *entity.Settings) SettingsResponse {
	expenses := make([]MandatoryExpenseResponse, 0, len(settings.MandatoryExpenses))
	for _, e := range settings.MandatoryExpenses {
		expenses = append(expenses, MandatoryExpenseResponseFromEntity(e))
	}

	return SettingsResponse{
		SavingsRate:          settings.SavingsRate,
		SalaryDates:          settings.SalaryDates,
		EnableSmartReserve:   settings.EnableSmartReserve,
		ManualReservedAmount: settings.ManualReservedAmount,
		InitialBalance:       settings.InitialBalance,
		InitialBalanceDate:   settings.InitialBalanceDate.Format(time.DateOnly),
		MandatoryExpenses:    expenses,
	}
}

// MandatoryExpenseResponseFromEntity converts a MandatoryExpense entity to
// its response form.
func MandatoryExpenseResponseFromEntity(expense *entity.MandatoryExpense) MandatoryExpenseResponse {
	return MandatoryExpenseResponse{
		ID:       expense.ID,
		Name:     expense.Name,
		Amount:   expense.Amount,
		Day:      expense.Day,
		Keywords: expense.Keywords,
		MemberID: expense.MemberID,
		Remind:   expense.Remind,
	}
}
