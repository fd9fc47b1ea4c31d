package reservation

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"libraryapi/internal/book"
	"libraryapi/internal/httpx"
	"libraryapi/internal/member"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type reserveReq struct {
	BookID   string `json:"book_id" validate:"required"`
	MemberID string `json:"member_id" validate:"required"`
}

// List handles GET /reservations
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := Query{
		Status:   query.Get("status"),
		BookID:   query.Get("book_id"),
		MemberID: query.Get("member_id"),
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	params.Limit = pageSize
	params.Offset = (page - 1) * pageSize

	reservations, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, reservations, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Reserve handles POST /reservations
func (h *HTTPHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req reserveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	res, err := h.service.Reserve(r.Context(), httpx.ActorFrom(r), req.BookID, req.MemberID)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, member.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Member not found", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccessCreated(w, res)
}

// Cancel handles POST /reservations/{id}/cancel
func (h *HTTPHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	res, err := h.service.Cancel(r.Context(), httpx.ActorFrom(r), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Reservation not found", nil)
		case errors.Is(err, ErrInvalidState):
			httpx.JSONError(w, http.StatusConflict, "INVALID_STATE", "Reservation is not pending", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	httpx.JSONSuccess(w, res, nil)
}
