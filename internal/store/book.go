package store

import (
	"context"

	"github.com/kamilawad/library-api/internal/domain"
)

// BookStore defines the interface for catalog persistence.
type BookStore interface {
	// Create persists a new book and assigns its ID from the store.
	// Returns validation errors from the domain Book if data is invalid.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its primary key.
	// Returns ErrBookNotFound if no record has that ID.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// List returns every stored book in store-native order.
	// An empty store yields an empty slice, never an error.
	List(ctx context.Context) ([]*domain.Book, error)

	// Update overwrites the mutable fields of an existing book.
	// The book's ID selects the record and never changes.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book by its ID.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id int64) error
}
