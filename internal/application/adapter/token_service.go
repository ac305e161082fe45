package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenClaims represents validated token claims.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService validates access tokens issued by the external identity
// service. This backend never issues tokens itself.
type TokenService interface {
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
