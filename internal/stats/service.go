package stats

import (
	"context"
	"fmt"
	"time"
)

// Service assembles the snapshots and runs the computation.
type Service struct {
	source Source
	now    func() time.Time
}

func NewService(source Source) *Service {
	return &Service{source: source, now: time.Now}
}

// WithClock overrides the service clock. Tests use it to pin time.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	books, err := s.source.AllBooks(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("stats summary: %w", err)
	}
	members, err := s.source.AllMembers(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("stats summary: %w", err)
	}
	loans, err := s.source.AllLoans(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("stats summary: %w", err)
	}
	reservations, err := s.source.AllReservations(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("stats summary: %w", err)
	}

	return Compute(books, members, loans, reservations, s.now()), nil
}
