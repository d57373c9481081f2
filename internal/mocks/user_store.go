package mocks

import (
	"context"
	"sync"

	"github.com/kamilawad/library-api/internal/domain"
	"github.com/kamilawad/library-api/internal/store"
)

// MockUserStore is an in-memory implementation of store.UserStore for tests.
type MockUserStore struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int64

	// CreateErr, when set, is returned by Create regardless of state.
	CreateErr error
	// GetErr, when set, is returned by GetByUsername regardless of state.
	GetErr error
}

// Ensure MockUserStore implements store.UserStore interface
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty MockUserStore.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users:  make(map[string]*domain.User),
		nextID: 1,
	}
}

// Create implements store.UserStore.Create
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return store.ErrUsernameExists
	}

	user.ID = m.nextID
	m.nextID++
	// Mirror the real store: the mock records a fake hash so loaded users
	// validate, and the plaintext never survives Create.
	if user.HashedPassword == "" {
		user.HashedPassword = "hashed:" + user.Password
	}
	user.Password = ""

	stored := *user
	m.users[user.Username] = &stored
	return nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	result := *user
	return &result, nil
}

// WithTx implements store.UserStore.WithTx
// The mock has no transaction support; it returns itself.
func (m *MockUserStore) WithTx(tx store.DBTX) store.UserStore {
	return m
}
