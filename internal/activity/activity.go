package activity

import "time"

// Actions recorded in the activity log.
const (
	ActionCreate  = "CREATE"
	ActionUpdate  = "UPDATE"
	ActionDelete  = "DELETE"
	ActionBorrow  = "BORROW"
	ActionReturn  = "RETURN"
	ActionRenew   = "RENEW"
	ActionReserve = "RESERVE"
	ActionCancel  = "CANCEL"
)

// Entity types referenced by log entries.
const (
	EntityBook        = "book"
	EntityMember      = "member"
	EntityBorrow      = "borrow"
	EntityReservation = "reservation"
)

// Entry is one append-only activity log record. Entries are written once
// and never mutated or deleted.
type Entry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}
