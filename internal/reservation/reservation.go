package reservation

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a reservation does not exist.
var ErrNotFound = errors.New("reservation not found")

// ErrInvalidState is returned when a transition is attempted on a
// reservation that already left the pending state.
var ErrInvalidState = errors.New("reservation is not pending")

// Status is the lifecycle state of a reservation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Reservation is a member's place in the hold queue for a book.
// Priority 1 is the head of the queue.
type Reservation struct {
	ID               string    `json:"id"`
	BookID           string    `json:"book_id"`
	MemberID         string    `json:"member_id"`
	ReservationDate  time.Time `json:"reservation_date"`
	Status           Status    `json:"status"`
	NotificationSent bool      `json:"notification_sent"`
	Priority         int       `json:"priority"`
}

// Query defines filters and pagination for listing reservations.
type Query struct {
	Status   string
	BookID   string
	MemberID string
	Limit    int
	Offset   int
}
