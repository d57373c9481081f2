package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT asserting the given username as
	// subject. Returns the serialized token string or an error if signing
	// fails.
	GenerateToken(ctx context.Context, username string) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken if the token has expired, or
	// ErrInvalidToken for any other validation failure (bad signature,
	// wrong issuer or audience, malformed token).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated claims of a bearer token.
type Claims struct {
	// Subject is the username the token was issued for.
	Subject string

	// IssuedAt is the time the token was issued.
	IssuedAt time.Time

	// ExpiresAt is the time the token expires.
	ExpiresAt time.Time

	// ID is the unique token identifier (the jti claim).
	ID string
}
