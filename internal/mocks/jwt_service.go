package mocks

import (
	"context"

	"github.com/kamilawad/library-api/internal/service/auth"
)

// MockJWTService is a configurable implementation of auth.JWTService for tests.
type MockJWTService struct {
	// Token is returned by GenerateToken when Err is nil.
	Token string
	// Claims is returned by ValidateToken when Err is nil.
	Claims *auth.Claims
	// Err, when set, is returned by both methods.
	Err error
}

// Ensure MockJWTService implements auth.JWTService interface
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.GenerateToken
func (m *MockJWTService) GenerateToken(ctx context.Context, username string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Token, nil
}

// ValidateToken implements auth.JWTService.ValidateToken
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Claims != nil {
		return m.Claims, nil
	}
	return &auth.Claims{Subject: "test-user"}, nil
}
