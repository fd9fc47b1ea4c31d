package stats

import (
	"context"

	"libraryapi/internal/book"
	"libraryapi/internal/loan"
	"libraryapi/internal/member"
	"libraryapi/internal/reservation"
)

// Source loads the full entity snapshots the summary is computed from.
// The dashboard works on whole collections, not pages.
type Source interface {
	AllBooks(ctx context.Context) ([]book.Book, error)
	AllMembers(ctx context.Context) ([]member.Member, error)
	AllLoans(ctx context.Context) ([]loan.Loan, error)
	AllReservations(ctx context.Context) ([]reservation.Reservation, error)
}
