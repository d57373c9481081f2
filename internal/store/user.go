package store

import (
	"context"

	"github.com/kamilawad/library-api/internal/domain"
)

// UserStore defines the interface for account persistence.
type UserStore interface {
	// Create saves a new user to the store. The user's plaintext Password
	// is hashed before storage and cleared from the struct.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByUsername retrieves a user by their unique username.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user carries the hashed password, never the plaintext.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// WithTx returns a UserStore bound to the given transaction, so the
	// username-existence check and the insert can run atomically.
	WithTx(tx DBTX) UserStore
}
