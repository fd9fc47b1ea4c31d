package reservation

import "time"

// HoldPeriod is how long a pending reservation is kept before it
// expires without being fulfilled.
const HoldPeriod = 30 * 24 * time.Hour

// Open builds a new pending reservation. The queue priority is assigned
// by the repository at insert time so concurrent reservations for the
// same book cannot claim the same slot.
func Open(bookID, memberID string, now time.Time) Reservation {
	return Reservation{
		BookID:          bookID,
		MemberID:        memberID,
		ReservationDate: now,
		Status:          StatusPending,
	}
}
