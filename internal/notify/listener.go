package notify

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Channel is the pg_notify channel the table triggers publish to.
const Channel = "library_events"

// Listener holds a dedicated connection on LISTEN and forwards every
// notification payload to the hub.
type Listener struct {
	db  *pgxpool.Pool
	hub *Hub
}

func NewListener(db *pgxpool.Pool, hub *Hub) *Listener {
	return &Listener{db: db, hub: hub}
}

// Run listens until the context is cancelled, reconnecting with a
// short backoff when the connection drops.
func (l *Listener) Run(ctx context.Context) {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("change feed listener err=%v, reconnecting", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return err
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		l.hub.Broadcast([]byte(n.Payload))
	}
}
