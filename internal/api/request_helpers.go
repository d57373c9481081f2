package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kamilawad/library-api/internal/api/shared"
)

// pathBookID extracts the book ID from the URL path. An absent or
// non-numeric id cannot address any record, so it responds 404 and returns
// false, matching the behavior of a route that never matched.
func pathBookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Book not found.")
		return 0, false
	}
	return id, true
}
