package domain

import (
	"errors"
	"time"
)

// Common book validation errors.
var (
	ErrEmptyTitle  = errors.New("title is required")
	ErrEmptyAuthor = errors.New("author is required")
)

// Book represents a catalog record. The ID is assigned by the store on
// creation and never changes; every other field is replaced wholesale on
// update. ISBN and PublishedDate are optional.
type Book struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	ISBN          string     `json:"isbn"`
	PublishedDate *time.Time `json:"publishedDate"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
}

// NewBook creates a Book with the given fields and sets the creation/update
// timestamps. The ID is left unset until the store assigns one.
// Returns an error if validation fails.
func NewBook(title, author, isbn string, publishedDate *time.Time) (*Book, error) {
	now := time.Now().UTC()
	book := &Book{
		Title:         title,
		Author:        author,
		ISBN:          isbn,
		PublishedDate: publishedDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := book.Validate(); err != nil {
		return nil, err
	}

	return book, nil
}

// Validate checks that the required fields are present.
func (b *Book) Validate() error {
	if b.Title == "" {
		return NewValidationError("title", "is required", ErrEmptyTitle)
	}
	if b.Author == "" {
		return NewValidationError("author", "is required", ErrEmptyAuthor)
	}
	return nil
}

// Replace overwrites the mutable fields of the book with those of other,
// preserving identity and creation time. The supplied book's ID is ignored.
func (b *Book) Replace(other *Book) {
	b.Title = other.Title
	b.Author = other.Author
	b.ISBN = other.ISBN
	b.PublishedDate = other.PublishedDate
	b.UpdatedAt = time.Now().UTC()
}
