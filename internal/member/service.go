package member

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"libraryapi/internal/activity"
)

// CreateInput carries the fields accepted when registering a member.
type CreateInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	MembershipType MembershipType
	ExpiryDate     time.Time
	Status         Status
}

// Service provides membership business logic.
type Service struct {
	repo Repository
	rec  activity.Recorder
}

func NewService(repo Repository, rec activity.Recorder) *Service {
	return &Service{repo: repo, rec: rec}
}

// newMembershipCode generates the card code printed on membership QR
// badges. Uniqueness is enforced by the store.
func newMembershipCode() string {
	return "MBR-" + strings.ToUpper(uuid.New().String()[:8])
}

// List returns members matching the query.
func (s *Service) List(ctx context.Context, q Query) ([]Member, int, error) {
	return s.repo.List(ctx, q)
}

// Get returns a single member by ID.
func (s *Service) Get(ctx context.Context, id string) (Member, error) {
	return s.repo.Get(ctx, id)
}

// Create registers a member and records the mutation.
func (s *Service) Create(ctx context.Context, actor string, in CreateInput) (Member, error) {
	m := Member{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		MembershipType: in.MembershipType,
		ExpiryDate:     in.ExpiryDate,
		Status:         in.Status,
		Penalties:      decimal.Zero,
		MembershipCode: newMembershipCode(),
	}
	if m.MembershipType == "" {
		m.MembershipType = TypeStandard
	}
	if m.Status == "" {
		m.Status = StatusActive
	}
	if m.ExpiryDate.IsZero() {
		m.ExpiryDate = time.Now().AddDate(1, 0, 0)
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		return Member{}, err
	}
	s.rec.Record(ctx, actor, activity.ActionCreate, activity.EntityMember, m.ID,
		fmt.Sprintf("Member added: %s", m.Name()))
	return m, nil
}

// Update applies a partial update; only supplied fields change.
func (s *Service) Update(ctx context.Context, actor, id string, upd Update) (Member, error) {
	m, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return Member{}, err
	}
	s.rec.Record(ctx, actor, activity.ActionUpdate, activity.EntityMember, id,
		fmt.Sprintf("Member updated: %s", m.Name()))
	return m, nil
}

// Delete removes a member. Members referenced by loan or reservation
// records cannot be removed.
func (s *Service) Delete(ctx context.Context, actor, id string) error {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.rec.Record(ctx, actor, activity.ActionDelete, activity.EntityMember, id,
		fmt.Sprintf("Member removed: %s", m.Name()))
	return nil
}
