package book

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

const bookColumns = `id, title, author, isbn, category, language, level, publication_year,
	pages, publisher, status, total_copies, available_copies, location, description,
	cover_url, added_at, updated_at`

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Category, &b.Language,
		&b.Level, &b.PublicationYear, &b.Pages, &b.Publisher, &b.Status,
		&b.TotalCopies, &b.AvailableCopies, &b.Location, &b.Description,
		&b.CoverURL, &b.AddedAt, &b.UpdatedAt)
	return b, err
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM books
		WHERE ($1 = '' OR status = $1)
		AND ($2 = '' OR category = $2)
		AND ($3 = '' OR language = $3)
		AND ($4 = '' OR title ILIKE '%%' || $4 || '%%' OR author ILIKE '%%' || $4 || '%%' OR isbn = $4)
		ORDER BY title
		LIMIT $5 OFFSET $6`, bookColumns)

	rows, err := r.db.Query(ctx, query, q.Status, q.Category, q.Language, q.Search, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	var books []Book
	var total int
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Category, &b.Language,
			&b.Level, &b.PublicationYear, &b.Pages, &b.Publisher, &b.Status,
			&b.TotalCopies, &b.AvailableCopies, &b.Location, &b.Description,
			&b.CoverURL, &b.AddedAt, &b.UpdatedAt, &total); err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1`, bookColumns)

	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author, isbn, category, language, level, publication_year,
			pages, publisher, status, total_copies, available_copies, location, description, cover_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, added_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.ISBN, b.Category, b.Language, b.Level, b.PublicationYear,
		b.Pages, b.Publisher, b.Status, b.TotalCopies, b.AvailableCopies,
		b.Location, b.Description, b.CoverURL).
		Scan(&b.ID, &b.AddedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, id string, upd Update) (Book, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}

	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Author != nil {
		add("author", *upd.Author)
	}
	if upd.ISBN != nil {
		add("isbn", *upd.ISBN)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Language != nil {
		add("language", *upd.Language)
	}
	if upd.Level != nil {
		add("level", *upd.Level)
	}
	if upd.PublicationYear != nil {
		add("publication_year", *upd.PublicationYear)
	}
	if upd.Pages != nil {
		add("pages", *upd.Pages)
	}
	if upd.Publisher != nil {
		add("publisher", *upd.Publisher)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.TotalCopies != nil {
		add("total_copies", *upd.TotalCopies)
	}
	if upd.AvailableCopies != nil {
		add("available_copies", *upd.AvailableCopies)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.CoverURL != nil {
		add("cover_url", *upd.CoverURL)
	}

	query := fmt.Sprintf(`UPDATE books SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), bookColumns)

	b, err := scanBook(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" { // check_violation
			return Book{}, ErrInvalidCopies
		}
		return Book{}, fmt.Errorf("update book: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return ErrConflict
		}
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
