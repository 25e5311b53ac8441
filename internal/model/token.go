package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenType is the only token type issued by the login endpoint.
const TokenType = "bearer"

// TokenManager encodes and decodes signed access tokens.
type TokenManager interface {
	Encode(subject uuid.UUID, ttl time.Duration, now time.Time) (string, error)
	Decode(token string, now time.Time) (uuid.UUID, error)
}

// AccessToken is the login response.
type AccessToken struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
