package reservation

import (
	"context"
	"fmt"
	"log"
	"time"

	"libraryapi/internal/activity"
	"libraryapi/internal/book"
	"libraryapi/internal/member"
)

// SweepActor is recorded on activity entries written by the periodic
// sweep rather than an authenticated request.
const SweepActor = "system"

// Service orchestrates the reservation queue.
type Service struct {
	repo    Repository
	books   book.Repository
	members member.Repository
	rec     activity.Recorder
	now     func() time.Time
}

func NewService(repo Repository, books book.Repository, members member.Repository, rec activity.Recorder) *Service {
	return &Service{
		repo:    repo,
		books:   books,
		members: members,
		rec:     rec,
		now:     time.Now,
	}
}

// WithClock overrides the service clock. Tests use it to pin time.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context, q Query) ([]Reservation, int, error) {
	return s.repo.List(ctx, q)
}

func (s *Service) Get(ctx context.Context, id string) (Reservation, error) {
	return s.repo.Get(ctx, id)
}

// Reserve places a member in the hold queue for a book. There is no
// availability precondition: members may queue for a book that is on
// the shelf right now.
func (s *Service) Reserve(ctx context.Context, actor, bookID, memberID string) (Reservation, error) {
	b, err := s.books.Get(ctx, bookID)
	if err != nil {
		return Reservation{}, err
	}
	m, err := s.members.Get(ctx, memberID)
	if err != nil {
		return Reservation{}, err
	}

	r := Open(bookID, memberID, s.now())
	if err := s.repo.Create(ctx, &r); err != nil {
		return Reservation{}, err
	}

	s.rec.Record(ctx, actor, activity.ActionReserve, activity.EntityReservation, r.ID,
		fmt.Sprintf("Reserved: %s by %s (position %d)", b.Title, m.Name(), r.Priority))
	return r, nil
}

// Cancel withdraws a pending reservation.
func (s *Service) Cancel(ctx context.Context, actor, id string) (Reservation, error) {
	r, err := s.repo.Cancel(ctx, id)
	if err != nil {
		return Reservation{}, err
	}

	s.rec.Record(ctx, actor, activity.ActionCancel, activity.EntityReservation, id,
		fmt.Sprintf("Reservation cancelled for book %s", r.BookID))
	return r, nil
}

// Sweep advances the queue: the head reservation for every book with
// copies on the shelf is fulfilled, and pending reservations older than
// the hold period expire. Called on a timer from the server process.
func (s *Service) Sweep(ctx context.Context) error {
	fulfilled, err := s.repo.FulfillAvailable(ctx)
	if err != nil {
		return fmt.Errorf("fulfill reservations: %w", err)
	}
	for _, r := range fulfilled {
		s.rec.Record(ctx, SweepActor, activity.ActionUpdate, activity.EntityReservation, r.ID,
			fmt.Sprintf("Reservation fulfilled for book %s, member %s notified", r.BookID, r.MemberID))
	}

	expired, err := s.repo.ExpirePending(ctx, s.now().Add(-HoldPeriod))
	if err != nil {
		return fmt.Errorf("expire reservations: %w", err)
	}
	for _, r := range expired {
		s.rec.Record(ctx, SweepActor, activity.ActionUpdate, activity.EntityReservation, r.ID,
			fmt.Sprintf("Reservation expired for book %s", r.BookID))
	}

	if len(fulfilled) > 0 || len(expired) > 0 {
		log.Printf("reservation sweep fulfilled=%d expired=%d", len(fulfilled), len(expired))
	}
	return nil
}
