package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kamilawad/library-api/internal/api/shared"
	"github.com/kamilawad/library-api/internal/domain"
	"github.com/kamilawad/library-api/internal/platform/logger"
	"github.com/kamilawad/library-api/internal/store"
)

// BookHandler handles catalog-related HTTP requests.
type BookHandler struct {
	bookStore store.BookStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bookStore store.BookStore, logger *slog.Logger) *BookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookHandler{
		bookStore: bookStore,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "book_handler")),
	}
}

// List handles GET /books requests.
// It returns every stored book; an empty catalog yields an empty list.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	books, err := h.bookStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list books", err)
		return
	}

	log.Debug("listed books", slog.Int("count", len(books)))
	shared.RespondWithJSON(w, r, http.StatusOK, books)
}

// Get handles GET /books/{id} requests.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathBookID(w, r)
	if !ok {
		return
	}

	book, err := h.bookStore.GetByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// Create handles POST /books requests.
// On success it responds 201 with the stored record, including its assigned
// ID, and a Location header referencing the new resource.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationErrorMessage(err))
		return
	}

	book, err := domain.NewBook(req.Title, req.Author, req.ISBN, req.publishedDate())
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid book data: "+err.Error())
		return
	}

	if err := h.bookStore.Create(r.Context(), book); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	log.Debug("book created", slog.Int64("book_id", book.ID))
	w.Header().Set("Location", fmt.Sprintf("/books/%d", book.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, book)
}

// Update handles PUT /books/{id} requests.
// It validates the payload exactly like Create, then overwrites the mutable
// fields of the existing record. Identity never changes; the payload's id,
// if any, is ignored. Responds 204 on success.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := pathBookID(w, r)
	if !ok {
		return
	}

	var req BookRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationErrorMessage(err))
		return
	}

	incoming, err := domain.NewBook(req.Title, req.Author, req.ISBN, req.publishedDate())
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid book data: "+err.Error())
		return
	}

	book, err := h.bookStore.GetByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	book.Replace(incoming)

	if err := h.bookStore.Update(r.Context(), book); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	log.Debug("book updated", slog.Int64("book_id", book.ID))
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /books/{id} requests.
// On success it responds 200 with the record as it existed immediately
// before removal.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := pathBookID(w, r)
	if !ok {
		return
	}

	book, err := h.bookStore.GetByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	if err := h.bookStore.Delete(r.Context(), id); err != nil {
		h.respondStoreError(w, r, err)
		return
	}

	log.Debug("book deleted", slog.Int64("book_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// respondStoreError maps a store error to the right HTTP response.
func (h *BookHandler) respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrBookNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Book not found.")
		return
	}
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
