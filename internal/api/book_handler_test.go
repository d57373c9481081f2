package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilawad/library-api/internal/domain"
	"github.com/kamilawad/library-api/internal/mocks"
)

func newBookRouter(bookStore *mocks.MockBookStore) http.Handler {
	handler := NewBookHandler(bookStore, nil)

	r := chi.NewRouter()
	r.Route("/books", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/", handler.Create)
		r.Get("/{id}", handler.Get)
		r.Put("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createTestBook(t *testing.T, router http.Handler) domain.Book {
	t.Helper()

	w := doRequest(t, router, http.MethodPost, "/books", map[string]interface{}{
		"title":         "My 60 Memorable Games",
		"author":        "Bobby Fischer",
		"isbn":          "978-1906388300",
		"publishedDate": "1969-01-01T00:00:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var book domain.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
	return book
}

func TestCreateBook(t *testing.T) {
	t.Parallel()

	t.Run("valid book", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())

		w := doRequest(t, router, http.MethodPost, "/books", map[string]interface{}{
			"title":         "My 60 Memorable Games",
			"author":        "Bobby Fischer",
			"isbn":          "978-1906388300",
			"publishedDate": "1969-01-01T00:00:00",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/books/1", w.Header().Get("Location"))

		var book domain.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, int64(1), book.ID)
		assert.Equal(t, "My 60 Memorable Games", book.Title)
		assert.Equal(t, "Bobby Fischer", book.Author)
		assert.Equal(t, "978-1906388300", book.ISBN)
		require.NotNil(t, book.PublishedDate)
		assert.Equal(t, time.Date(1969, 1, 1, 0, 0, 0, 0, time.UTC), book.PublishedDate.UTC())
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())

		tests := []struct {
			name    string
			payload map[string]interface{}
		}{
			{"missing title", map[string]interface{}{"author": "Bobby Fischer"}},
			{"missing author", map[string]interface{}{"title": "My 60 Memorable Games"}},
			{"empty payload", map[string]interface{}{}},
		}
		for _, tt := range tests {
			w := doRequest(t, router, http.MethodPost, "/books", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code, tt.name)
		}
	})

	t.Run("optional fields omitted", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())

		w := doRequest(t, router, http.MethodPost, "/books", map[string]interface{}{
			"title":  "Dune",
			"author": "Frank Herbert",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var book domain.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Empty(t, book.ISBN)
		assert.Nil(t, book.PublishedDate)
	})
}

func TestGetBook(t *testing.T) {
	t.Parallel()

	router := newBookRouter(mocks.NewMockBookStore())
	created := createTestBook(t, router)

	t.Run("existing book", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, fmt.Sprintf("/books/%d", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var book domain.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, created.ID, book.ID)
		assert.Equal(t, created.Title, book.Title)
		assert.Equal(t, created.Author, book.Author)
		assert.Equal(t, created.ISBN, book.ISBN)
	})

	t.Run("absent book", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/books/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodGet, "/books/abc", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListBooks(t *testing.T) {
	t.Parallel()

	t.Run("empty catalog yields empty list", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())

		w := doRequest(t, router, http.MethodGet, "/books", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("returns all books", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())
		createTestBook(t, router)
		createTestBook(t, router)

		w := doRequest(t, router, http.MethodGet, "/books", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var books []domain.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
		assert.Len(t, books, 2)
	})
}

func TestUpdateBook(t *testing.T) {
	t.Parallel()

	t.Run("overwrites mutable fields, preserves identity", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())
		created := createTestBook(t, router)

		w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/books/%d", created.ID), map[string]interface{}{
			"id":            999, // Ignored: identity comes from the path
			"title":         "Introduction to Algorithms",
			"author":        "Thomas H. Cormen",
			"isbn":          "978-0262033848",
			"publishedDate": "2009-07-31T00:00:00",
		})
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/books/%d", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var book domain.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, created.ID, book.ID)
		assert.Equal(t, "Introduction to Algorithms", book.Title)
		assert.Equal(t, "Thomas H. Cormen", book.Author)
		assert.Equal(t, "978-0262033848", book.ISBN)
		require.NotNil(t, book.PublishedDate)
		assert.Equal(t, time.Date(2009, 7, 31, 0, 0, 0, 0, time.UTC), book.PublishedDate.UTC())
	})

	t.Run("absent book", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())

		w := doRequest(t, router, http.MethodPut, "/books/999", map[string]interface{}{
			"title":  "Dune",
			"author": "Frank Herbert",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())
		created := createTestBook(t, router)

		w := doRequest(t, router, http.MethodPut, fmt.Sprintf("/books/%d", created.ID), map[string]interface{}{
			"title": "No Author",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Parallel()

	t.Run("returns the deleted record", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())
		created := createTestBook(t, router)

		w := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/books/%d", created.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var book domain.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, created.ID, book.ID)
		assert.Equal(t, created.Title, book.Title)

		// Deleted means gone.
		w = doRequest(t, router, http.MethodGet, fmt.Sprintf("/books/%d", created.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("absent book", func(t *testing.T) {
		t.Parallel()
		router := newBookRouter(mocks.NewMockBookStore())

		w := doRequest(t, router, http.MethodDelete, "/books/999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookStoreFailurePropagates(t *testing.T) {
	t.Parallel()

	bookStore := mocks.NewMockBookStore()
	bookStore.Err = assert.AnError
	router := newBookRouter(bookStore)

	w := doRequest(t, router, http.MethodGet, "/books", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
