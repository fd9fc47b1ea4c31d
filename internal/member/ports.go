package member

import (
	"context"
)

// Repository defines the contract for member data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Member, int, error)
	Get(ctx context.Context, id string) (Member, error)
	Create(ctx context.Context, m *Member) error
	Update(ctx context.Context, id string, upd Update) (Member, error)
	Delete(ctx context.Context, id string) error
}
