package loan

// Lending policy. These functions are pure: they take current entity
// state and a clock reading and produce the next state or a policy
// error. Persistence and its side effects live in the repository.

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"libraryapi/internal/book"
	"libraryapi/internal/member"
)

// LoanPeriod is the fixed duration from borrow to due date.
const LoanPeriod = 14 * 24 * time.Hour

// MaxRenewals caps how often a single loan can be extended.
const MaxRenewals = 2

// DailyPenalty is the charge per day (rounded up) past the due date.
var DailyPenalty = decimal.RequireFromString("0.5")

// Open decides whether a member may borrow a book and produces the new
// borrow record.
func Open(b book.Book, m member.Member, now time.Time) (Loan, error) {
	if b.AvailableCopies <= 0 {
		return Loan{}, ErrUnavailable
	}
	if m.Status != member.StatusActive {
		return Loan{}, ErrIneligibleMember
	}
	return Loan{
		BookID:       b.ID,
		MemberID:     m.ID,
		BorrowDate:   now,
		DueDate:      now.Add(LoanPeriod),
		Status:       StatusActive,
		RenewalCount: 0,
		Penalty:      decimal.Zero,
	}, nil
}

// Close finalizes a return: it stamps the return date, computes the
// late fee and marks the record returned. Returned records are
// immutable, so closing one again fails.
func Close(l Loan, now time.Time) (Loan, error) {
	if l.Status == StatusReturned {
		return Loan{}, ErrNotFound
	}
	l.Penalty = LateFee(l.DueDate, now)
	l.ReturnDate = &now
	l.Status = StatusReturned
	return l, nil
}

// Renew extends the due date by one loan period counted from the
// previous due date, not from now. The record's status is left
// untouched: renewing an overdue loan does not clear its overdue state.
func Renew(l Loan, now time.Time) (Loan, error) {
	if l.Status == StatusReturned {
		return Loan{}, ErrNotFound
	}
	if l.RenewalCount >= MaxRenewals {
		return Loan{}, ErrRenewalLimit
	}
	l.DueDate = l.DueDate.Add(LoanPeriod)
	l.RenewalCount++
	return l, nil
}

// LateFee computes the penalty owed when a loan due at dueDate comes
// back at returnedAt. Fractional days count as whole days.
func LateFee(dueDate, returnedAt time.Time) decimal.Decimal {
	if !returnedAt.After(dueDate) {
		return decimal.Zero
	}
	daysLate := int64(math.Ceil(returnedAt.Sub(dueDate).Hours() / 24))
	return DailyPenalty.Mul(decimal.NewFromInt(daysLate))
}

// IsOverdue reports whether an active loan has passed its due date.
// The overdue state is derived and idempotent; it is applied on read
// and by the periodic sweep, never by a user action.
func IsOverdue(l Loan, now time.Time) bool {
	return l.Status == StatusActive && now.After(l.DueDate)
}

// Derive applies the overdue derivation to a loan snapshot.
func Derive(l Loan, now time.Time) Loan {
	if IsOverdue(l, now) {
		l.Status = StatusOverdue
	}
	return l
}
