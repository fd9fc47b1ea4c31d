package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"libraryapi/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /auth/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	token, expiresIn, u, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			httpx.JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, map[string]any{
		"access_token": token,
		"expires_in":   expiresIn,
		"user":         u,
	}, nil)
}

// ListUsers handles GET /auth/users. The route sits behind the
// require-auth middleware; the admin check happens here since only the
// handler knows which role the surface needs.
func (h *HTTPHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if httpx.RoleFrom(r) != string(RoleAdmin) {
		httpx.JSONError(w, http.StatusForbidden, "FORBIDDEN", "Admin role required", nil)
		return
	}

	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if users == nil {
		users = []User{}
	}
	httpx.JSONSuccess(w, users, nil)
}
