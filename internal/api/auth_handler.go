package api

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kamilawad/library-api/internal/api/shared"
	"github.com/kamilawad/library-api/internal/domain"
	"github.com/kamilawad/library-api/internal/service/auth"
	"github.com/kamilawad/library-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	db               *sql.DB
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// db may be nil in tests that stub the store; the registration check and
// insert then run without a wrapping transaction.
func NewAuthHandler(
	db *sql.DB,
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		db:               db,
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register.
// The username-existence check and the insert run inside a single store
// transaction; the unique constraint on username remains the authoritative
// duplicate signal under concurrent registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationErrorMessage(err))
		return
	}

	user, err := domain.NewUser(req.Username, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	err = h.register(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Username is already taken.")
			return
		}
		h.logger.Error("failed to create user", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{Message: "User created."})
}

// register runs the check-then-insert for a new account, transactionally
// when a database handle is available.
func (h *AuthHandler) register(ctx context.Context, user *domain.User) error {
	createIn := func(ctx context.Context, s store.UserStore) error {
		_, err := s.GetByUsername(ctx, user.Username)
		if err == nil {
			return store.ErrUsernameExists
		}
		if !errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		return s.Create(ctx, user)
	}

	if h.db == nil {
		return createIn(ctx, h.userStore)
	}
	return store.RunInTransaction(ctx, h.db, func(ctx context.Context, tx *sql.Tx) error {
		return createIn(ctx, h.userStore.WithTx(tx))
	})
}

// Login handles POST /auth/login.
// Unknown usernames and wrong passwords are deliberately indistinguishable
// in the response, to avoid username enumeration.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationErrorMessage(err))
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		h.logger.Error("failed to get user by username", "error", err, "username", req.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Username)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err, "username", user.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
