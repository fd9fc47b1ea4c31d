// Package stats computes the dashboard aggregates from full entity
// snapshots. Compute is pure so the numbers are reproducible from any
// snapshot and trivially testable.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"libraryapi/internal/book"
	"libraryapi/internal/loan"
	"libraryapi/internal/member"
	"libraryapi/internal/reservation"
)

// TopN is how many entries the popular book and active member
// leaderboards carry.
const TopN = 5

// PopularBook is one leaderboard entry for borrow counts.
type PopularBook struct {
	BookID      string `json:"book_id"`
	Title       string `json:"title"`
	BorrowCount int    `json:"borrow_count"`
}

// ActiveMember is one leaderboard entry for lifetime borrows.
type ActiveMember struct {
	MemberID     string `json:"member_id"`
	Name         string `json:"name"`
	TotalBorrows int    `json:"total_borrows"`
}

// Summary is the dashboard payload.
type Summary struct {
	TotalBooks          int             `json:"total_books"`
	TotalMembers        int             `json:"total_members"`
	ActiveBorrows       int             `json:"active_borrows"`
	OverdueBooks        int             `json:"overdue_books"`
	PendingReservations int             `json:"pending_reservations"`
	TotalPenalties      decimal.Decimal `json:"total_penalties"`
	MonthlyBorrows      int             `json:"monthly_borrows"`
	PopularBooks        []PopularBook   `json:"popular_books"`
	ActiveMembers       []ActiveMember  `json:"active_members"`
}

// Compute derives the summary from full snapshots as of now.
//
// Penalties sum over every borrow record, returned ones included.
// Monthly borrows compare the month of year only, so a March borrow
// from last year counts in this March as well; the dashboard has
// always read this way.
func Compute(books []book.Book, members []member.Member, loans []loan.Loan,
	reservations []reservation.Reservation, now time.Time) Summary {

	s := Summary{
		TotalBooks:     len(books),
		TotalMembers:   len(members),
		TotalPenalties: decimal.Zero,
		PopularBooks:   []PopularBook{},
		ActiveMembers:  []ActiveMember{},
	}

	for _, r := range reservations {
		if r.Status == reservation.StatusPending {
			s.PendingReservations++
		}
	}

	counts := make(map[string]int)
	for _, l := range loans {
		switch loan.Derive(l, now).Status {
		case loan.StatusActive:
			s.ActiveBorrows++
		case loan.StatusOverdue:
			s.OverdueBooks++
		}
		s.TotalPenalties = s.TotalPenalties.Add(l.Penalty)
		if l.BorrowDate.Month() == now.Month() {
			s.MonthlyBorrows++
		}
		counts[l.BookID]++
	}

	// Every book appears in the count, borrowed or not; ties keep the
	// catalog order.
	for _, b := range books {
		s.PopularBooks = append(s.PopularBooks, PopularBook{
			BookID:      b.ID,
			Title:       b.Title,
			BorrowCount: counts[b.ID],
		})
	}
	sort.SliceStable(s.PopularBooks, func(i, j int) bool {
		return s.PopularBooks[i].BorrowCount > s.PopularBooks[j].BorrowCount
	})
	if len(s.PopularBooks) > TopN {
		s.PopularBooks = s.PopularBooks[:TopN]
	}

	for _, m := range members {
		if m.Status != member.StatusActive {
			continue
		}
		s.ActiveMembers = append(s.ActiveMembers, ActiveMember{
			MemberID:     m.ID,
			Name:         m.Name(),
			TotalBorrows: m.TotalBorrows,
		})
	}
	sort.SliceStable(s.ActiveMembers, func(i, j int) bool {
		return s.ActiveMembers[i].TotalBorrows > s.ActiveMembers[j].TotalBorrows
	})
	if len(s.ActiveMembers) > TopN {
		s.ActiveMembers = s.ActiveMembers[:TopN]
	}

	return s
}
