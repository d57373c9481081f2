package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilawad/library-api/internal/mocks"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"username": "kamil",
				"password": "password123",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"username": "kamil",
				"password": "12345",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing username",
			payload: map[string]interface{}{
				"password": "password123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"username": "kamil",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			userStore := mocks.NewMockUserStore()
			handler := NewAuthHandler(
				nil,
				userStore,
				&mocks.MockJWTService{Token: "test-token"},
				&mocks.MockPasswordVerifier{ShouldSucceed: true},
				nil,
			)

			w := postJSON(t, handler.Register, "/auth/register", tt.payload)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp MessageResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "User created.", resp.Message)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()

	userStore := mocks.NewMockUserStore()
	handler := NewAuthHandler(
		nil,
		userStore,
		&mocks.MockJWTService{Token: "test-token"},
		&mocks.MockPasswordVerifier{ShouldSucceed: true},
		nil,
	)

	payload := map[string]interface{}{
		"username": "kamil",
		"password": "password123",
	}

	w := postJSON(t, handler.Register, "/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same username again, different password: still rejected.
	payload["password"] = "otherpassword456"
	w = postJSON(t, handler.Register, "/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Username is already taken.", resp.Error)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	registered := func(t *testing.T) *mocks.MockUserStore {
		t.Helper()
		userStore := mocks.NewMockUserStore()
		handler := NewAuthHandler(nil, userStore,
			&mocks.MockJWTService{Token: "test-token"},
			&mocks.MockPasswordVerifier{ShouldSucceed: true}, nil)
		w := postJSON(t, handler.Register, "/auth/register", map[string]interface{}{
			"username": "kamil",
			"password": "password123",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		return userStore
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(nil, registered(t),
			&mocks.MockJWTService{Token: "test-token"},
			&mocks.MockPasswordVerifier{ShouldSucceed: true}, nil)

		w := postJSON(t, handler.Login, "/auth/login", map[string]interface{}{
			"username": "kamil",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "test-token", resp.Token)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(nil, registered(t),
			&mocks.MockJWTService{Token: "test-token"},
			&mocks.MockPasswordVerifier{ShouldSucceed: false}, nil)

		wrongPassword := postJSON(t, handler.Login, "/auth/login", map[string]interface{}{
			"username": "kamil",
			"password": "wrongpassword",
		})
		unknownUser := postJSON(t, handler.Login, "/auth/login", map[string]interface{}{
			"username": "nobody",
			"password": "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
		assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		handler := NewAuthHandler(nil, registered(t),
			&mocks.MockJWTService{Token: "test-token"},
			&mocks.MockPasswordVerifier{ShouldSucceed: true}, nil)

		w := postJSON(t, handler.Login, "/auth/login", map[string]interface{}{
			"username": "kamil",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
