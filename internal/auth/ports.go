package auth

import (
	"context"
	"time"
)

// Repository defines the contract for staff account storage.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	List(ctx context.Context) ([]User, error)
	// TouchLastLogin stamps a successful login.
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
