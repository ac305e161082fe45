package error

import "errors"

// Auth domain errors. Token issuing belongs to an external identity service;
// only validation failures surface here.
var (
	// ErrMissingToken is returned when no bearer token is provided.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when a token fails validation.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for auth errors.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-010003"
)
