package book

import (
	"context"
	"fmt"

	"libraryapi/internal/activity"
)

// CreateInput carries the fields accepted when adding a book. Copy
// counts default so a new title is immediately borrowable.
type CreateInput struct {
	Title           string
	Author          string
	ISBN            string
	Category        string
	Language        string
	Level           string
	PublicationYear int
	Pages           int
	Publisher       string
	Status          Status
	TotalCopies     int
	AvailableCopies int
	Location        string
	Description     string
	CoverURL        *string
}

// Service provides catalog business logic.
type Service struct {
	repo Repository
	rec  activity.Recorder
}

func NewService(repo Repository, rec activity.Recorder) *Service {
	return &Service{repo: repo, rec: rec}
}

// List returns books matching the query.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

// Get returns a single book by ID.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Create adds a book to the catalog and records the mutation.
func (s *Service) Create(ctx context.Context, actor string, in CreateInput) (Book, error) {
	b := Book{
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		Category:        in.Category,
		Language:        in.Language,
		Level:           in.Level,
		PublicationYear: in.PublicationYear,
		Pages:           in.Pages,
		Publisher:       in.Publisher,
		Status:          in.Status,
		TotalCopies:     in.TotalCopies,
		AvailableCopies: in.AvailableCopies,
		Location:        in.Location,
		Description:     in.Description,
		CoverURL:        in.CoverURL,
	}
	if b.Status == "" {
		b.Status = StatusAvailable
	}
	if b.TotalCopies <= 0 {
		b.TotalCopies = 1
	}
	if b.AvailableCopies <= 0 || b.AvailableCopies > b.TotalCopies {
		b.AvailableCopies = b.TotalCopies
	}

	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	s.rec.Record(ctx, actor, activity.ActionCreate, activity.EntityBook, b.ID,
		fmt.Sprintf("Book added: %s", b.Title))
	return b, nil
}

// Update applies a partial update; only supplied fields change. Copy
// counters are validated against the resulting state, with the schema
// CHECK as the backstop for concurrent updates.
func (s *Service) Update(ctx context.Context, actor, id string, upd Update) (Book, error) {
	if upd.TotalCopies != nil || upd.AvailableCopies != nil {
		cur, err := s.repo.Get(ctx, id)
		if err != nil {
			return Book{}, err
		}
		total, avail := cur.TotalCopies, cur.AvailableCopies
		if upd.TotalCopies != nil {
			total = *upd.TotalCopies
		}
		if upd.AvailableCopies != nil {
			avail = *upd.AvailableCopies
		}
		if total < 1 || avail < 0 || avail > total {
			return Book{}, ErrInvalidCopies
		}
	}

	b, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return Book{}, err
	}
	s.rec.Record(ctx, actor, activity.ActionUpdate, activity.EntityBook, id,
		fmt.Sprintf("Book updated: %s", b.Title))
	return b, nil
}

// Delete removes a book. Books referenced by loan or reservation
// records cannot be removed.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.rec.Record(ctx, actor, activity.ActionDelete, activity.EntityBook, id,
		fmt.Sprintf("Book removed: %s", b.Title))
	return nil
}
