package reservation

import (
	"context"
	"time"
)

// Repository defines the contract for reservation storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Reservation, int, error)
	Get(ctx context.Context, id string) (Reservation, error)
	// Create persists a pending reservation and assigns its queue
	// priority (1 + pending count for the book) in the same statement.
	Create(ctx context.Context, r *Reservation) error
	// Cancel flips a pending reservation to cancelled. It returns
	// ErrInvalidState when the reservation exists but is no longer
	// pending, ErrNotFound when it does not exist.
	Cancel(ctx context.Context, id string) (Reservation, error)
	// FulfillAvailable marks the head of the queue fulfilled for every
	// book that has copies on the shelf, setting notification_sent.
	// It returns the reservations that changed.
	FulfillAvailable(ctx context.Context) ([]Reservation, error)
	// ExpirePending expires pending reservations placed before the
	// cutoff and returns the reservations that changed.
	ExpirePending(ctx context.Context, cutoff time.Time) ([]Reservation, error)
}
