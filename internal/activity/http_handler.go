package activity

import (
	"net/http"
	"strconv"

	"libraryapi/internal/httpx"
)

// DefaultListLimit caps the feed; the dashboard shows recent entries
// only, newest first.
const DefaultListLimit = 100

type HTTPHandler struct {
	repo Repository
}

func NewHTTPHandler(repo Repository) *HTTPHandler {
	return &HTTPHandler{repo: repo}
}

// List handles GET /activity
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	entries, err := h.repo.List(r.Context(), limit)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	httpx.JSONSuccess(w, entries, map[string]any{"limit": limit})
}
