package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createReq struct {
	Title           string  `json:"title" validate:"required,max=500"`
	Author          string  `json:"author" validate:"required,max=200"`
	ISBN            string  `json:"isbn" validate:"required,isbn"`
	Category        string  `json:"category" validate:"max=100"`
	Language        string  `json:"language" validate:"max=50"`
	Level           string  `json:"level" validate:"max=50"`
	PublicationYear int     `json:"publication_year" validate:"omitempty,gte=0,lte=2100"`
	Pages           int     `json:"pages" validate:"omitempty,gte=0"`
	Publisher       string  `json:"publisher" validate:"max=200"`
	Status          string  `json:"status" validate:"omitempty,oneof=available borrowed reserved maintenance"`
	TotalCopies     int     `json:"total_copies" validate:"omitempty,gte=1"`
	AvailableCopies int     `json:"available_copies" validate:"omitempty,gte=0"`
	Location        string  `json:"location" validate:"max=100"`
	Description     string  `json:"description"`
	CoverURL        *string `json:"cover_url"`
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := Query{
		Status:   query.Get("status"),
		Category: query.Get("category"),
		Language: query.Get("language"),
		Search:   query.Get("q"),
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

	books, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, books, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Get handles GET /books/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	b, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, b, nil)
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	b, err := h.service.Create(r.Context(), httpx.ActorFrom(r), CreateInput{
		Title:           req.Title,
		Author:          req.Author,
		ISBN:            req.ISBN,
		Category:        req.Category,
		Language:        req.Language,
		Level:           req.Level,
		PublicationYear: req.PublicationYear,
		Pages:           req.Pages,
		Publisher:       req.Publisher,
		Status:          Status(req.Status),
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.AvailableCopies,
		Location:        req.Location,
		Description:     req.Description,
		CoverURL:        req.CoverURL,
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, b)
}

// Update handles PATCH /books/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var upd Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	b, err := h.service.Update(r.Context(), httpx.ActorFrom(r), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrInvalidCopies):
			httpx.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"Available copies must stay within total copies", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(w, b, nil)
}

// Delete handles DELETE /books/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.service.Delete(r.Context(), httpx.ActorFrom(r), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrConflict):
			httpx.JSONError(w, http.StatusConflict, "CONFLICT", "Book has loan or reservation history", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessNoContent(w)
}
