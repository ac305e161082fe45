package error

import "errors"

// Settings domain errors.
var (
	// ErrSettingsNotFound is returned when no settings row exists for a user.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInvalidSalaryDate is returned when a salary date is outside 1-31.
	ErrInvalidSalaryDate = errors.New("salary dates must be between 1 and 31")

	// ErrInvalidExpenseDay is returned when a due day is outside 1-31.
	ErrInvalidExpenseDay = errors.New("expense day must be between 1 and 31")

	// ErrExpenseNameRequired is returned when a mandatory expense has no name.
	ErrExpenseNameRequired = errors.New("expense name is required")

	// ErrNegativeExpenseAmount is returned when an expected amount is negative.
	ErrNegativeExpenseAmount = errors.New("expense amount must not be negative")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSalaryDate     SettingsErrorCode = "SET-010001"
	ErrCodeInvalidExpenseDay     SettingsErrorCode = "SET-010002"
	ErrCodeExpenseNameRequired   SettingsErrorCode = "SET-010003"
	ErrCodeNegativeExpenseAmount SettingsErrorCode = "SET-010004"

	// Not-found errors (02XXXX)
	ErrCodeSettingsNotFound SettingsErrorCode = "SET-020001"

	// Internal errors (99XXXX)
	ErrCodeSettingsInternalError SettingsErrorCode = "SET-990001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
