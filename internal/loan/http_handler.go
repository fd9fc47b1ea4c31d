package loan

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

type borrowReq struct {
	BookID   string `json:"book_id" validate:"required"`
	MemberID string `json:"member_id" validate:"required"`
}

// List handles GET /loans
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

	loans, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, loans, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Borrow handles POST /loans
func (h *HTTPHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	var req borrowReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	l, err := h.service.Borrow(r.Context(), httpx.ActorFrom(r), req.BookID, req.MemberID)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, member.ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Member not found", nil)
		case errors.Is(err, ErrUnavailable):
			httpx.JSONError(w, http.StatusConflict, "UNAVAILABLE", "No copies available", nil)
		case errors.Is(err, ErrIneligibleMember):
			httpx.JSONError(w, http.StatusUnprocessableEntity, "INELIGIBLE_MEMBER", "Member is not eligible to borrow", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessCreated(w, l)
}

// Return handles POST /loans/{id}/return
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	l, err := h.service.Return(r.Context(), httpx.ActorFrom(r), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Borrow record not found or already returned", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, l, nil)
}

// Renew handles POST /loans/{id}/renew
func (h *HTTPHandler) Renew(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	l, err := h.service.Renew(r.Context(), httpx.ActorFrom(r), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Borrow record not found or already returned", nil)
		case errors.Is(err, ErrRenewalLimit):
			httpx.JSONError(w, http.StatusUnprocessableEntity, "RENEWAL_LIMIT_EXCEEDED", "Renewal limit reached", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, l, nil)
}
