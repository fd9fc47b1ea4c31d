package loan

import (
	"context"
	"fmt"
	"log"
	"time"

	"libraryapi/internal/activity"
	"libraryapi/internal/book"
	"libraryapi/internal/member"
)

// Service orchestrates the lending lifecycle: it loads current entity
// state, applies the policy and hands the outcome to the repository.
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

// List returns borrow records matching the query, with the overdue
// derivation applied to the snapshot.
func (s *Service) List(ctx context.Context, q Query) ([]Loan, int, error) {
	loans, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	now := s.now()
	for i := range loans {
		loans[i] = Derive(loans[i], now)
	}
	return loans, total, nil
}

// Get returns one borrow record with the overdue derivation applied.
func (s *Service) Get(ctx context.Context, id string) (Loan, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return Loan{}, err
	}
	return Derive(l, s.now()), nil
}

// Borrow lends a book to a member.
func (s *Service) Borrow(ctx context.Context, actor, bookID, memberID string) (Loan, error) {
	b, err := s.books.Get(ctx, bookID)
	if err != nil {
		return Loan{}, err
	}
	m, err := s.members.Get(ctx, memberID)
	if err != nil {
		return Loan{}, err
	}

	l, err := Open(b, m, s.now())
	if err != nil {
		return Loan{}, err
	}
	if err := s.repo.CreateBorrow(ctx, &l); err != nil {
		return Loan{}, err
	}

	s.rec.Record(ctx, actor, activity.ActionBorrow, activity.EntityBorrow, l.ID,
		fmt.Sprintf("Borrowed: %s by %s", b.Title, m.Name()))
	return l, nil
}

// Return closes a borrow record, computing any late fee.
func (s *Service) Return(ctx context.Context, actor, id string) (Loan, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return Loan{}, err
	}

	closed, err := Close(l, s.now())
	if err != nil {
		return Loan{}, err
	}
	if err := s.repo.FinalizeReturn(ctx, closed); err != nil {
		return Loan{}, err
	}

	detail := fmt.Sprintf("Returned: book %s by member %s", closed.BookID, closed.MemberID)
	if b, err := s.books.Get(ctx, closed.BookID); err == nil {
		detail = fmt.Sprintf("Returned: %s", b.Title)
	}
	if !closed.Penalty.IsZero() {
		detail += fmt.Sprintf(" (penalty %s)", closed.Penalty.StringFixed(2))
	}
	s.rec.Record(ctx, actor, activity.ActionReturn, activity.EntityBorrow, id, detail)
	return closed, nil
}

// Renew extends a loan's due date by one loan period.
func (s *Service) Renew(ctx context.Context, actor, id string) (Loan, error) {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return Loan{}, err
	}

	renewed, err := Renew(l, s.now())
	if err != nil {
		return Loan{}, err
	}
	if err := s.repo.SaveRenewal(ctx, renewed); err != nil {
		return Loan{}, err
	}

	s.rec.Record(ctx, actor, activity.ActionRenew, activity.EntityBorrow, id,
		fmt.Sprintf("Renewed loan, due %s (renewal %d of %d)",
			renewed.DueDate.Format("2006-01-02"), renewed.RenewalCount, MaxRenewals))
	return renewed, nil
}

// SweepOverdue marks active records past their due date as overdue.
// Called on a timer from the server process.
func (s *Service) SweepOverdue(ctx context.Context) error {
	n, err := s.repo.MarkOverdue(ctx, s.now())
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("overdue sweep marked=%d", n)
	}
	return nil
}
