package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/book"
	"libraryapi/internal/loan"
	"libraryapi/internal/member"
	"libraryapi/internal/reservation"
)

// PostgresRepo loads snapshot slices for the summary. Each query selects
// only the columns the computation reads.
type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) AllBooks(ctx context.Context) ([]book.Book, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title FROM books ORDER BY added_at`)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) AllMembers(ctx context.Context) ([]member.Member, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, first_name, last_name, status, total_borrows
		FROM members ORDER BY join_date`)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	defer rows.Close()

	var members []member.Member
	for rows.Next() {
		var m member.Member
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Status, &m.TotalBorrows); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *PostgresRepo) AllLoans(ctx context.Context) ([]loan.Loan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, book_id, borrow_date, due_date, status, penalty
		FROM borrow_records`)
	if err != nil {
		return nil, fmt.Errorf("load borrow records: %w", err)
	}
	defer rows.Close()

	var loans []loan.Loan
	for rows.Next() {
		var l loan.Loan
		if err := rows.Scan(&l.ID, &l.BookID, &l.BorrowDate, &l.DueDate, &l.Status, &l.Penalty); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (r *PostgresRepo) AllReservations(ctx context.Context) ([]reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT id, status FROM reservations`)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	defer rows.Close()

	var reservations []reservation.Reservation
	for rows.Next() {
		var res reservation.Reservation
		if err := rows.Scan(&res.ID, &res.Status); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
