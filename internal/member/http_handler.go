package member

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type createReq struct {
	FirstName      string     `json:"first_name" validate:"required,max=100"`
	LastName       string     `json:"last_name" validate:"required,max=100"`
	Email          string     `json:"email" validate:"required,email"`
	Phone          string     `json:"phone" validate:"max=30"`
	Address        string     `json:"address" validate:"max=500"`
	MembershipType string     `json:"membership_type" validate:"omitempty,oneof=standard premium student"`
	ExpiryDate     *time.Time `json:"expiry_date"`
	Status         string     `json:"status" validate:"omitempty,oneof=active suspended expired"`
}

// List handles GET /members
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := Query{
		Status:         query.Get("status"),
		MembershipType: query.Get("membership_type"),
		Search:         query.Get("q"),
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

	members, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, members, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// Get handles GET /members/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	m, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Member not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, m, nil)
}

// Create handles POST /members
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

	in := CreateInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		MembershipType: MembershipType(req.MembershipType),
		Status:         Status(req.Status),
	}
	if req.ExpiryDate != nil {
		in.ExpiryDate = *req.ExpiryDate
	}

	m, err := h.service.Create(r.Context(), httpx.ActorFrom(r), in)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccessCreated(w, m)
}

// Update handles PATCH /members/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var upd Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	m, err := h.service.Update(r.Context(), httpx.ActorFrom(r), id, upd)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Member not found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, m, nil)
}

// Delete handles DELETE /members/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.service.Delete(r.Context(), httpx.ActorFrom(r), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "Member not found", nil)
		case errors.Is(err, ErrConflict):
			httpx.JSONError(w, http.StatusConflict, "CONFLICT", "Member has loan or reservation history", nil)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccessNoContent(w)
}
