package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/kamilawad/library-api/internal/domain"
	"github.com/kamilawad/library-api/internal/platform/logger"
	"github.com/kamilawad/library-api/internal/store"
)

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the
// BookStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

// Create implements store.BookStore.Create
// It saves a new book and assigns its ID from the database.
// Returns validation errors from the domain Book if data is invalid.
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO books (title, author, isbn, published_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		book.Title,
		book.Author,
		book.ISBN,
		book.PublishedDate,
		book.CreatedAt,
		book.UpdatedAt,
	).Scan(&book.ID)

	if err != nil {
		log.Error("failed to create book",
			slog.String("error", err.Error()),
			slog.String("title", book.Title))
		return err
	}

	log.Info("book created successfully",
		slog.Int64("book_id", book.ID),
		slog.String("title", book.Title))
	return nil
}

// GetByID implements store.BookStore.GetByID
// Returns store.ErrBookNotFound if no book has that ID.
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, author, isbn, published_date, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book domain.Book
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Author,
		&book.ISBN,
		&book.PublishedDate,
		&book.CreatedAt,
		&book.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("book not found", slog.Int64("book_id", id))
			return nil, store.ErrBookNotFound
		}
		log.Error("failed to get book by ID",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return nil, err
	}

	return &book, nil
}

// List implements store.BookStore.List
// It retrieves every stored book in primary-key order.
// Returns an empty slice if the catalog is empty.
func (s *PostgresBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, author, isbn, published_date, created_at, updated_at
		FROM books
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list books", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var books []*domain.Book
	for rows.Next() {
		var book domain.Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.ISBN,
			&book.PublishedDate,
			&book.CreatedAt,
			&book.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan book row", slog.String("error", err.Error()))
			return nil, err
		}
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no books found
	if books == nil {
		books = []*domain.Book{}
	}

	log.Debug("listed books", slog.Int("count", len(books)))
	return books, nil
}

// Update implements store.BookStore.Update
// It overwrites the mutable fields of an existing book; identity never changes.
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := book.Validate(); err != nil {
		log.Warn("book validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("book_id", book.ID))
		return err
	}

	book.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, published_date = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		book.Title,
		book.Author,
		book.ISBN,
		book.PublishedDate,
		book.UpdatedAt,
		book.ID,
	)

	if err != nil {
		log.Error("failed to update book",
			slog.String("error", err.Error()),
			slog.Int64("book_id", book.ID))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("book_id", book.ID))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("book not found for update", slog.Int64("book_id", book.ID))
		return store.ErrBookNotFound
	}

	log.Info("book updated successfully", slog.Int64("book_id", book.ID))
	return nil
}

// Delete implements store.BookStore.Delete
// Returns store.ErrBookNotFound if the book does not exist.
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM books WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete book",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("book_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("book not found for delete", slog.Int64("book_id", id))
		return store.ErrBookNotFound
	}

	log.Info("book deleted successfully", slog.Int64("book_id", id))
	return nil
}
