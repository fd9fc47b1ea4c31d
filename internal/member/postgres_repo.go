package member

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const memberColumns = `id, first_name, last_name, email, phone, address, membership_type,
	join_date, expiry_date, status, total_borrows, current_borrows, penalties, membership_code`

func scanMember(row pgx.Row) (Member, error) {
	var m Member
	err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Address,
		&m.MembershipType, &m.JoinDate, &m.ExpiryDate, &m.Status,
		&m.TotalBorrows, &m.CurrentBorrows, &m.Penalties, &m.MembershipCode)
	return m, err
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Member, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM members
		WHERE ($1 = '' OR status = $1)
		AND ($2 = '' OR membership_type = $2)
		AND ($3 = '' OR first_name ILIKE '%%' || $3 || '%%' OR last_name ILIKE '%%' || $3 || '%%' OR email ILIKE '%%' || $3 || '%%')
		ORDER BY first_name, last_name
		LIMIT $4 OFFSET $5`, memberColumns)

	rows, err := r.db.Query(ctx, query, q.Status, q.MembershipType, q.Search, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []Member
	var total int
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Address,
			&m.MembershipType, &m.JoinDate, &m.ExpiryDate, &m.Status,
			&m.TotalBorrows, &m.CurrentBorrows, &m.Penalties, &m.MembershipCode, &total); err != nil {
			return nil, 0, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE id = $1`, memberColumns)

	m, err := scanMember(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		return Member{}, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

func (r *PostgresRepo) Create(ctx context.Context, m *Member) error {
	const query = `
		INSERT INTO members (first_name, last_name, email, phone, address, membership_type,
			expiry_date, status, penalties, membership_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, join_date, total_borrows, current_borrows`

	err := r.db.QueryRow(ctx, query,
		m.FirstName, m.LastName, m.Email, m.Phone, m.Address, m.MembershipType,
		m.ExpiryDate, m.Status, m.Penalties, m.MembershipCode).
		Scan(&m.ID, &m.JoinDate, &m.TotalBorrows, &m.CurrentBorrows)
	if err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, id string, upd Update) (Member, error) {
	var sets []string
	args := []any{id}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Address != nil {
		add("address", *upd.Address)
	}
	if upd.MembershipType != nil {
		add("membership_type", *upd.MembershipType)
	}
	if upd.ExpiryDate != nil {
		add("expiry_date", *upd.ExpiryDate)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.Penalties != nil {
		add("penalties", *upd.Penalties)
	}

	if len(sets) == 0 {
		return r.Get(ctx, id)
	}

	query := fmt.Sprintf(`UPDATE members SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), memberColumns)

	m, err := scanMember(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		return Member{}, fmt.Errorf("update member: %w", err)
	}
	return m, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return ErrConflict
		}
		return fmt.Errorf("delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
