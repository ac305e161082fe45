// Package error defines domain-specific errors for the budget backend.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidHorizon is returned when the forecast horizon is not positive
	// or exceeds the configured maximum.
	ErrInvalidHorizon = errors.New("horizon_days must be between 1 and the configured maximum")

	// ErrNegativeSimulatedSpend is returned when the simulated daily spend is negative.
	ErrNegativeSimulatedSpend = errors.New("daily_spend must not be negative")

	// ErrNegativeSimulatedIncome is returned when the simulated income is negative.
	ErrNegativeSimulatedIncome = errors.New("income must not be negative")

	// ErrExpenseNotFound is returned when a mandatory expense id is unknown.
	ErrExpenseNotFound = errors.New("mandatory expense not found")

	// ErrNegativeReserve is returned when the manual reserve amount is negative.
	ErrNegativeReserve = errors.New("reserve amount must not be negative")

	// ErrInvalidMonthKey is returned when a month key does not parse as YYYY-MM.
	ErrInvalidMonthKey = errors.New("invalid month key, expected YYYY-MM")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidHorizon          BudgetErrorCode = "BGT-010001"
	ErrCodeNegativeSimulatedSpend  BudgetErrorCode = "BGT-010002"
	ErrCodeNegativeSimulatedIncome BudgetErrorCode = "BGT-010003"
	ErrCodeNegativeReserve         BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidMonthKey         BudgetErrorCode = "BGT-010005"

	// Not-found errors (02XXXX)
	ErrCodeExpenseNotFound BudgetErrorCode = "BGT-020001"

	// Internal errors (99XXXX)
	ErrCodeBudgetInternalError BudgetErrorCode = "BGT-990001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
