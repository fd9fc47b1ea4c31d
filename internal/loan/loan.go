package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a borrow record does not exist or is
// already returned (returned records are immutable).
var ErrNotFound = errors.New("borrow record not found")

// ErrUnavailable is returned when a book has no copies left to lend.
var ErrUnavailable = errors.New("no copies available")

// ErrIneligibleMember is returned when the borrowing member is not
// active (suspended or expired).
var ErrIneligibleMember = errors.New("member is not eligible to borrow")

// ErrRenewalLimit is returned when a loan has already been renewed the
// maximum number of times.
var ErrRenewalLimit = errors.New("renewal limit reached")

// Status is the lifecycle state of a borrow record.
type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
	StatusOverdue  Status = "overdue"
)

// Loan represents one borrow record pairing a book and a member.
type Loan struct {
	ID           string          `json:"id"`
	BookID       string          `json:"book_id"`
	MemberID     string          `json:"member_id"`
	BorrowDate   time.Time       `json:"borrow_date"`
	DueDate      time.Time       `json:"due_date"`
	ReturnDate   *time.Time      `json:"return_date,omitempty"`
	Status       Status          `json:"status"`
	RenewalCount int             `json:"renewal_count"`
	Penalty      decimal.Decimal `json:"penalty"`
	Notes        string          `json:"notes,omitempty"`
}

// Query defines filters and pagination for listing borrow records.
type Query struct {
	Status   string
	BookID   string
	MemberID string
	Limit    int
	Offset   int
}
