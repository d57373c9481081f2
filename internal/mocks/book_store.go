package mocks

import (
	"context"
	"sync"

	"github.com/kamilawad/library-api/internal/domain"
	"github.com/kamilawad/library-api/internal/store"
)

// MockBookStore is an in-memory implementation of store.BookStore for tests.
type MockBookStore struct {
	mu     sync.Mutex
	books  map[int64]*domain.Book
	order  []int64
	nextID int64

	// Err, when set, is returned by every method regardless of state.
	Err error
}

// Ensure MockBookStore implements store.BookStore interface
var _ store.BookStore = (*MockBookStore)(nil)

// NewMockBookStore creates an empty MockBookStore.
func NewMockBookStore() *MockBookStore {
	return &MockBookStore{
		books:  make(map[int64]*domain.Book),
		nextID: 1,
	}
}

// Create implements store.BookStore.Create
func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.Err != nil {
		return m.Err
	}
	if err := book.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	book.ID = m.nextID
	m.nextID++

	stored := *book
	m.books[book.ID] = &stored
	m.order = append(m.order, book.ID)
	return nil
}

// GetByID implements store.BookStore.GetByID
func (m *MockBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	result := *book
	return &result, nil
}

// List implements store.BookStore.List
func (m *MockBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	books := make([]*domain.Book, 0, len(m.order))
	for _, id := range m.order {
		result := *m.books[id]
		books = append(books, &result)
	}
	return books, nil
}

// Update implements store.BookStore.Update
func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	if m.Err != nil {
		return m.Err
	}
	if err := book.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.books[book.ID]; !ok {
		return store.ErrBookNotFound
	}
	stored := *book
	m.books[book.ID] = &stored
	return nil
}

// Delete implements store.BookStore.Delete
func (m *MockBookStore) Delete(ctx context.Context, id int64) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.books[id]; !ok {
		return store.ErrBookNotFound
	}
	delete(m.books, id)
	for i, bid := range m.order {
		if bid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
