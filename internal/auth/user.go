package auth

import (
	"errors"
	"time"
)

// ErrUnauthorized is returned for any credential failure. Callers get
// the same error whether the username or the password was wrong.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when a staff account does not exist.
var ErrNotFound = errors.New("user not found")

// Role is a staff access level.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
)

// User is a staff account that operates the dashboard. Members do not
// log in; they are records managed by staff.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Status       string     `json:"status"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
