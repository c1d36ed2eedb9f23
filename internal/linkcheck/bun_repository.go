package linkcheck

import (
	"context"
	"fmt"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewURLRepository(db *bun.DB) repository.Repository[*URL] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*URL]{
		NewRecord: func() *URL { return &URL{} },
		GetID: func(u *URL) uuid.UUID {
			return u.ID
		},
		SetID: func(u *URL, id uuid.UUID) {
			u.ID = id
		},
		GetIdentifier: func() string {
			return ""
		},
		GetIdentifierValue: func(*URL) string {
			return ""
		},
	})
}

// BunURLStore persists tracked URLs through bun and implements the Sink.
type BunURLStore struct {
	repo repository.Repository[*URL]
	now  func() time.Time
}

func NewBunURLStore(db *bun.DB) *BunURLStore {
	return &BunURLStore{
		repo: NewURLRepository(db),
		now:  time.Now,
	}
}

func (s *BunURLStore) MarkValid(ctx context.Context, u *URL) error {
	markValid(u, s.now())
	return s.update(ctx, u)
}

func (s *BunURLStore) MarkInvalid(ctx context.Context, u *URL, reason string) error {
	markInvalid(u, reason, s.now())
	return s.update(ctx, u)
}

func (s *BunURLStore) update(ctx context.Context, u *URL) error {
	_, err := s.repo.Update(ctx, u,
		repository.UpdateByID(u.ID.String()),
		repository.UpdateColumns("status", "status_code", "error_message", "last_checked"),
	)
	if err != nil {
		return fmt.Errorf("url repository error: %w", err)
	}
	return nil
}

var _ Sink = (*BunURLStore)(nil)
