package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const reservationColumns = `id, book_id, member_id, reservation_date, status,
	notification_sent, priority`

func scanReservation(row pgx.Row) (Reservation, error) {
	var res Reservation
	err := row.Scan(&res.ID, &res.BookID, &res.MemberID, &res.ReservationDate,
		&res.Status, &res.NotificationSent, &res.Priority)
	return res, err
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Reservation, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM reservations
		WHERE ($1 = '' OR status = $1)
		AND ($2 = '' OR book_id::text = $2)
		AND ($3 = '' OR member_id::text = $3)
		ORDER BY reservation_date DESC
		LIMIT $4 OFFSET $5`, reservationColumns)

	rows, err := r.db.Query(ctx, query, q.Status, q.BookID, q.MemberID, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []Reservation
	var total int
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(&res.ID, &res.BookID, &res.MemberID, &res.ReservationDate,
			&res.Status, &res.NotificationSent, &res.Priority, &total); err != nil {
			return nil, 0, err
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Reservation, error) {
	query := fmt.Sprintf(`SELECT %s FROM reservations WHERE id = $1`, reservationColumns)

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Reservation{}, ErrNotFound
		}
		return Reservation{}, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// Create inserts the reservation and assigns its queue priority in the
// same statement, so two concurrent holds on one book get distinct
// positions.
func (r *PostgresRepo) Create(ctx context.Context, res *Reservation) error {
	const query = `
		INSERT INTO reservations (book_id, member_id, reservation_date, status, notification_sent, priority)
		VALUES ($1, $2, $3, $4, false,
			1 + (SELECT COUNT(*) FROM reservations WHERE book_id = $1 AND status = 'pending'))
		RETURNING id, priority`

	err := r.db.QueryRow(ctx, query, res.BookID, res.MemberID, res.ReservationDate, res.Status).
		Scan(&res.ID, &res.Priority)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// Cancel flips the row only while it is still pending. When the
// conditional update misses we look the row up to tell a missing
// reservation apart from one that already left the queue.
func (r *PostgresRepo) Cancel(ctx context.Context, id string) (Reservation, error) {
	query := fmt.Sprintf(`
		UPDATE reservations
		SET status = 'cancelled'
		WHERE id = $1 AND status = 'pending'
		RETURNING %s`, reservationColumns)

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Reservation{}, fmt.Errorf("cancel reservation: %w", err)
	}

	if _, err := r.Get(ctx, id); err != nil {
		return Reservation{}, err
	}
	return Reservation{}, ErrInvalidState
}

func (r *PostgresRepo) FulfillAvailable(ctx context.Context) ([]Reservation, error) {
	query := fmt.Sprintf(`
		UPDATE reservations
		SET status = 'fulfilled', notification_sent = true
		WHERE id IN (
			SELECT DISTINCT ON (res.book_id) res.id
			FROM reservations res
			JOIN books b ON b.id = res.book_id
			WHERE res.status = 'pending' AND b.available_copies > 0
			ORDER BY res.book_id, res.priority, res.reservation_date
		)
		RETURNING %s`, reservationColumns)

	return r.collect(ctx, query)
}

func (r *PostgresRepo) ExpirePending(ctx context.Context, cutoff time.Time) ([]Reservation, error) {
	query := fmt.Sprintf(`
		UPDATE reservations
		SET status = 'expired'
		WHERE status = 'pending' AND reservation_date < $1
		RETURNING %s`, reservationColumns)

	return r.collect(ctx, query, cutoff)
}

func (r *PostgresRepo) collect(ctx context.Context, query string, args ...any) ([]Reservation, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update reservations: %w", err)
	}
	defer rows.Close()

	var reservations []Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
