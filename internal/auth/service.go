package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"libraryapi/internal/platform/crypto"
)

// Service authenticates staff accounts and issues access tokens.
type Service struct {
	secret string
	ttl    time.Duration
	repo   Repository
	now    func() time.Time
}

func NewService(secret string, ttl time.Duration, repo Repository) *Service {
	return &Service{
		secret: secret,
		ttl:    ttl,
		repo:   repo,
		now:    time.Now,
	}
}

// WithClock overrides the service clock. Tests use it to pin time.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Login verifies the credentials and returns a signed token plus the
// authenticated account. The last_login stamp is best effort; a failure
// there does not fail the login.
func (s *Service) Login(ctx context.Context, username, password string) (string, int, User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		// Only an unknown account maps to a credential failure; a
		// store error must surface as one so it is not served as 401.
		if errors.Is(err, ErrNotFound) {
			return "", 0, User{}, ErrUnauthorized
		}
		return "", 0, User{}, fmt.Errorf("login: %w", err)
	}
	if !crypto.VerifyPassword(u.PasswordHash, password) {
		return "", 0, User{}, ErrUnauthorized
	}
	if u.Status != "active" {
		return "", 0, User{}, ErrUnauthorized
	}

	token, _, err := crypto.GenerateToken(s.secret, u.ID, string(u.Role), s.ttl)
	if err != nil {
		return "", 0, User{}, err
	}

	now := s.now()
	if err := s.repo.TouchLastLogin(ctx, u.ID, now); err != nil {
		log.Printf("touch last_login user=%s err=%v", u.ID, err)
	}
	u.LastLogin = &now

	return token, int(s.ttl.Seconds()), u, nil
}

// ListUsers returns all staff accounts.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}
