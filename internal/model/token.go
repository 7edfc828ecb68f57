package model

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified payload of an access token.
type Claims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager generates and validates access tokens.
type TokenManager interface {
	Generate(userID uuid.UUID) (string, error)
	Parse(token string) (Claims, error)
}
