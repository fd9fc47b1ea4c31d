package member

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a member is not found.
var ErrNotFound = errors.New("member not found")

// ErrConflict is returned when a member cannot be deleted because loan
// or reservation records still reference them.
var ErrConflict = errors.New("member is referenced by existing records")

// Status is the membership state.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusExpired   Status = "expired"
)

// MembershipType distinguishes pricing/privilege tiers.
type MembershipType string

const (
	TypeStandard MembershipType = "standard"
	TypePremium  MembershipType = "premium"
	TypeStudent  MembershipType = "student"
)

// Member represents a registered library member.
type Member struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address,omitempty"`
	MembershipType MembershipType  `json:"membership_type"`
	JoinDate       time.Time       `json:"join_date"`
	ExpiryDate     time.Time       `json:"expiry_date"`
	Status         Status          `json:"status"`
	TotalBorrows   int             `json:"total_borrows"`
	CurrentBorrows int             `json:"current_borrows"`
	Penalties      decimal.Decimal `json:"penalties"`
	MembershipCode string          `json:"membership_code"`
}

// Name returns the member's display name.
func (m Member) Name() string {
	return m.FirstName + " " + m.LastName
}

// Query defines filters and pagination for listing members.
type Query struct {
	Status         string
	MembershipType string
	Search         string
	Limit          int
	Offset         int
}

// Update carries a partial update; only non-nil fields change.
type Update struct {
	FirstName      *string          `json:"first_name"`
	LastName       *string          `json:"last_name"`
	Email          *string          `json:"email"`
	Phone          *string          `json:"phone"`
	Address        *string          `json:"address"`
	MembershipType *MembershipType  `json:"membership_type"`
	ExpiryDate     *time.Time       `json:"expiry_date"`
	Status         *Status          `json:"status"`
	Penalties      *decimal.Decimal `json:"penalties"`
}
