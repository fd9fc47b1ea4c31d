package activity

import (
	"context"
	"log"
)

// Recorder appends activity log entries. Implementations must be
// best-effort: a failed append never blocks or rolls back the mutation
// that produced it.
type Recorder interface {
	Record(ctx context.Context, actor, action, entityType, entityID, details string)
}

// Repository defines the contract for activity log storage.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	List(ctx context.Context, limit int) ([]Entry, error)
}

// StoreRecorder writes entries through a Repository, swallowing errors.
type StoreRecorder struct {
	repo Repository
}

func NewStoreRecorder(repo Repository) *StoreRecorder {
	return &StoreRecorder{repo: repo}
}

// Record appends one entry. Errors are logged and discarded so the
// primary operation is never affected.
func (rec *StoreRecorder) Record(ctx context.Context, actor, action, entityType, entityID, details string) {
	e := Entry{
		UserID:     actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if err := rec.repo.Append(ctx, &e); err != nil {
		log.Printf("activity append failed action=%s entity_type=%s entity_id=%s error=%v",
			action, entityType, entityID, err)
	}
}
