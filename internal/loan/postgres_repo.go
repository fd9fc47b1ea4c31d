package loan

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

const loanColumns = `id, book_id, member_id, borrow_date, due_date, return_date,
	status, renewal_count, penalty, notes`

func scanLoan(row pgx.Row) (Loan, error) {
	var l Loan
	err := row.Scan(&l.ID, &l.BookID, &l.MemberID, &l.BorrowDate, &l.DueDate,
		&l.ReturnDate, &l.Status, &l.RenewalCount, &l.Penalty, &l.Notes)
	return l, err
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Loan, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM borrow_records
		WHERE ($1 = '' OR status = $1)
		AND ($2 = '' OR book_id::text = $2)
		AND ($3 = '' OR member_id::text = $3)
		ORDER BY borrow_date DESC
		LIMIT $4 OFFSET $5`, loanColumns)

	rows, err := r.db.Query(ctx, query, q.Status, q.BookID, q.MemberID, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list borrow records: %w", err)
	}
	defer rows.Close()

	var loans []Loan
	var total int
	for rows.Next() {
		var l Loan
		if err := rows.Scan(&l.ID, &l.BookID, &l.MemberID, &l.BorrowDate, &l.DueDate,
			&l.ReturnDate, &l.Status, &l.RenewalCount, &l.Penalty, &l.Notes, &total); err != nil {
			return nil, 0, err
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return loans, total, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Loan, error) {
	query := fmt.Sprintf(`SELECT %s FROM borrow_records WHERE id = $1`, loanColumns)

	l, err := scanLoan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, ErrNotFound
		}
		return Loan{}, fmt.Errorf("get borrow record: %w", err)
	}
	return l, nil
}

// CreateBorrow inserts the record and applies both side effects in one
// transaction. The copy decrement is conditional on copies remaining,
// so two concurrent borrows cannot oversell the last copy.
func (r *PostgresRepo) CreateBorrow(ctx context.Context, l *Loan) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin borrow: %w", err)
	}
	defer tx.Rollback(ctx)

	const decrementSQL = `
		UPDATE books
		SET available_copies = available_copies - 1,
		    status = CASE WHEN available_copies - 1 = 0 THEN 'borrowed' ELSE status END,
		    updated_at = now()
		WHERE id = $1 AND available_copies > 0`

	tag, err := tx.Exec(ctx, decrementSQL, l.BookID)
	if err != nil {
		return fmt.Errorf("decrement copies: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUnavailable
	}

	const insertSQL = `
		INSERT INTO borrow_records (book_id, member_id, borrow_date, due_date, status, renewal_count, penalty)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err = tx.QueryRow(ctx, insertSQL, l.BookID, l.MemberID, l.BorrowDate, l.DueDate,
		l.Status, l.RenewalCount, l.Penalty).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert borrow record: %w", err)
	}

	const memberSQL = `
		UPDATE members
		SET current_borrows = current_borrows + 1,
		    total_borrows = total_borrows + 1
		WHERE id = $1`

	if _, err := tx.Exec(ctx, memberSQL, l.MemberID); err != nil {
		return fmt.Errorf("bump member counters: %w", err)
	}

	return tx.Commit(ctx)
}

// FinalizeReturn closes the record and applies both side effects in one
// transaction. Closing is conditional on the record still being open.
func (r *PostgresRepo) FinalizeReturn(ctx context.Context, l Loan) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin return: %w", err)
	}
	defer tx.Rollback(ctx)

	const closeSQL = `
		UPDATE borrow_records
		SET return_date = $2, status = $3, penalty = $4
		WHERE id = $1 AND status IN ('active', 'overdue')`

	tag, err := tx.Exec(ctx, closeSQL, l.ID, l.ReturnDate, l.Status, l.Penalty)
	if err != nil {
		return fmt.Errorf("close borrow record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	const restoreSQL = `
		UPDATE books
		SET available_copies = available_copies + 1,
		    status = CASE WHEN status = 'borrowed' THEN 'available' ELSE status END,
		    updated_at = now()
		WHERE id = $1`

	if _, err := tx.Exec(ctx, restoreSQL, l.BookID); err != nil {
		return fmt.Errorf("restore copy: %w", err)
	}

	const memberSQL = `
		UPDATE members
		SET current_borrows = GREATEST(current_borrows - 1, 0),
		    penalties = penalties + $2
		WHERE id = $1`

	if _, err := tx.Exec(ctx, memberSQL, l.MemberID, l.Penalty); err != nil {
		return fmt.Errorf("settle member: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepo) SaveRenewal(ctx context.Context, l Loan) error {
	const query = `
		UPDATE borrow_records
		SET due_date = $2, renewal_count = $3
		WHERE id = $1 AND status IN ('active', 'overdue')`

	tag, err := r.db.Exec(ctx, query, l.ID, l.DueDate, l.RenewalCount)
	if err != nil {
		return fmt.Errorf("save renewal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) MarkOverdue(ctx context.Context, now time.Time) (int, error) {
	const query = `
		UPDATE borrow_records
		SET status = 'overdue'
		WHERE status = 'active' AND due_date < $1`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("mark overdue: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
