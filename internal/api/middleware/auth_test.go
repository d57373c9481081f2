package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilawad/library-api/internal/mocks"
	"github.com/kamilawad/library-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	nextCalled := func() (http.Handler, *bool, *string) {
		called := false
		var username string
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			username, _ = GetUsername(r)
			w.WriteHeader(http.StatusOK)
		}), &called, &username
	}

	tests := []struct {
		name        string
		authHeader  string
		jwtService  *mocks.MockJWTService
		wantStatus  int
		wantNextRun bool
	}{
		{
			name:        "missing header",
			authHeader:  "",
			jwtService:  &mocks.MockJWTService{},
			wantStatus:  http.StatusUnauthorized,
			wantNextRun: false,
		},
		{
			name:        "wrong scheme",
			authHeader:  "Basic dXNlcjpwYXNz",
			jwtService:  &mocks.MockJWTService{},
			wantStatus:  http.StatusUnauthorized,
			wantNextRun: false,
		},
		{
			name:        "malformed header",
			authHeader:  "Bearer",
			jwtService:  &mocks.MockJWTService{},
			wantStatus:  http.StatusUnauthorized,
			wantNextRun: false,
		},
		{
			name:        "invalid token",
			authHeader:  "Bearer bad-token",
			jwtService:  &mocks.MockJWTService{Err: auth.ErrInvalidToken},
			wantStatus:  http.StatusUnauthorized,
			wantNextRun: false,
		},
		{
			name:        "expired token",
			authHeader:  "Bearer expired-token",
			jwtService:  &mocks.MockJWTService{Err: auth.ErrExpiredToken},
			wantStatus:  http.StatusUnauthorized,
			wantNextRun: false,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			jwtService: &mocks.MockJWTService{
				Claims: &auth.Claims{Subject: "kamil"},
			},
			wantStatus:  http.StatusOK,
			wantNextRun: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next, called, username := nextCalled()
			middleware := NewAuthMiddleware(tt.jwtService)

			req := httptest.NewRequest(http.MethodGet, "/books", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			middleware.Authenticate(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantNextRun, *called)
			if tt.wantNextRun {
				require.Equal(t, "kamil", *username)
			}
		})
	}
}
