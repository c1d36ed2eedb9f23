package events

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewEventRepository(db *bun.DB) repository.Repository[*Event] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Event]{
		NewRecord: func() *Event { return &Event{} },
		GetID: func(e *Event) uuid.UUID {
			return e.ID
		},
		SetID: func(e *Event, id uuid.UUID) {
			e.ID = id
		},
		GetIdentifier: func() string {
			return ""
		},
		GetIdentifierValue: func(*Event) string {
			return ""
		},
	})
}

// BunRepository persists events through bun.
type BunRepository struct {
	repo repository.Repository[*Event]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{repo: NewEventRepository(db)}
}

func (r *BunRepository) Insert(ctx context.Context, event *Event) (*Event, error) {
	created, err := r.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("event repository error: %w", err)
	}
	return created, nil
}

func (r *BunRepository) Update(ctx context.Context, event *Event) (*Event, error) {
	updated, err := r.repo.Update(ctx, event,
		repository.UpdateByID(event.ID.String()),
		repository.UpdateColumns("archived", "location_id", "recurrence_rule_id", "start_at", "end_at", "updated_at"),
	)
	if err != nil {
		return nil, mapEventError(err, event.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapEventError(err, id.String())
	}
	return result, nil
}

func mapEventError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("event repository error: %w", err)
}
