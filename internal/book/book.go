package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrConflict is returned when a book cannot be deleted because loan or
// reservation records still reference it.
var ErrConflict = errors.New("book is referenced by existing records")

// ErrInvalidCopies is returned when an update would leave the copy
// counters inconsistent: available_copies must stay within
// [0, total_copies] and total_copies must stay positive.
var ErrInvalidCopies = errors.New("available copies must stay within total copies")

// Status is the lifecycle state of a title in the catalog.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusBorrowed    Status = "borrowed"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

// Book represents a catalog entry.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Category        string    `json:"category,omitempty"`
	Language        string    `json:"language,omitempty"`
	Level           string    `json:"level,omitempty"`
	PublicationYear int       `json:"publication_year,omitempty"`
	Pages           int       `json:"pages,omitempty"`
	Publisher       string    `json:"publisher,omitempty"`
	Status          Status    `json:"status"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	Location        string    `json:"location,omitempty"`
	Description     string    `json:"description,omitempty"`
	CoverURL        *string   `json:"cover_url,omitempty"`
	AddedAt         time.Time `json:"added_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Query defines filters and pagination for listing books.
type Query struct {
	Status   string
	Category string
	Language string
	Search   string
	Limit    int
	Offset   int
}

// Update carries a partial update; only non-nil fields change.
type Update struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	ISBN            *string `json:"isbn"`
	Category        *string `json:"category"`
	Language        *string `json:"language"`
	Level           *string `json:"level"`
	PublicationYear *int    `json:"publication_year"`
	Pages           *int    `json:"pages"`
	Publisher       *string `json:"publisher"`
	Status          *Status `json:"status"`
	TotalCopies     *int    `json:"total_copies"`
	AvailableCopies *int    `json:"available_copies"`
	Location        *string `json:"location"`
	Description     *string `json:"description"`
	CoverURL        *string `json:"cover_url"`
}
