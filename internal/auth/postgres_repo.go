package auth

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

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, first_name, last_name, status, last_login
		FROM library_users
		WHERE username = $1`

	var u User
	err := r.db.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.Email,
		&u.PasswordHash, &u.Role, &u.FirstName, &u.LastName, &u.Status, &u.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]User, error) {
	const query = `
		SELECT id, username, email, password_hash, role, first_name, last_name, status, last_login
		FROM library_users
		ORDER BY username`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
			&u.FirstName, &u.LastName, &u.Status, &u.LastLogin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresRepo) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE library_users SET last_login = $2 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id, at); err != nil {
		return fmt.Errorf("touch last_login: %w", err)
	}
	return nil
}
