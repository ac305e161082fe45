package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the type is neither income nor expense.
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")

	// ErrNegativeAmount is returned when the amount is negative; direction is
	// carried by the type, not the sign.
	ErrNegativeAmount = errors.New("transaction amount must not be negative")

	// ErrMissingDate is returned when no transaction date is provided.
	ErrMissingDate = errors.New("transaction date is required")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TRX-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TRX-010001"
	ErrCodeNegativeAmount         TransactionErrorCode = "TRX-010002"
	ErrCodeMissingDate            TransactionErrorCode = "TRX-010003"

	// Not-found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TRX-020001"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TRX-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
