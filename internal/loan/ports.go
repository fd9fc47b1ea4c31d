package loan

import (
	"context"
	"time"
)

// Repository defines the contract for borrow record storage. The write
// methods are transactional: the record change and its side effects on
// book copy counts and member counters commit or roll back together.
type Repository interface {
	List(ctx context.Context, q Query) ([]Loan, int, error)
	Get(ctx context.Context, id string) (Loan, error)
	// CreateBorrow persists a new record, decrements the book's
	// available copies (guarded against overselling) and bumps the
	// member's borrow counters.
	CreateBorrow(ctx context.Context, l *Loan) error
	// FinalizeReturn persists a closed record, restores a copy and
	// settles the member's counters and penalty balance.
	FinalizeReturn(ctx context.Context, l Loan) error
	// SaveRenewal persists an extended due date and renewal count.
	SaveRenewal(ctx context.Context, l Loan) error
	// MarkOverdue flips every active record past its due date to
	// overdue and reports how many changed.
	MarkOverdue(ctx context.Context, now time.Time) (int, error)
}
