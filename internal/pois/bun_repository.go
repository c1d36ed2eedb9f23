package pois

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewPOIRepository(db *bun.DB) repository.Repository[*POI] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*POI]{
		NewRecord: func() *POI { return &POI{} },
		GetID: func(p *POI) uuid.UUID {
			return p.ID
		},
		SetID: func(p *POI, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return ""
		},
		GetIdentifierValue: func(*POI) string {
			return ""
		},
	})
}

// BunRepository persists POIs through bun.
type BunRepository struct {
	repo repository.Repository[*POI]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{repo: NewPOIRepository(db)}
}

func (r *BunRepository) Insert(ctx context.Context, poi *POI) (*POI, error) {
	created, err := r.repo.Create(ctx, poi)
	if err != nil {
		return nil, fmt.Errorf("poi repository error: %w", err)
	}
	return created, nil
}

func (r *BunRepository) Update(ctx context.Context, poi *POI) (*POI, error) {
	updated, err := r.repo.Update(ctx, poi,
		repository.UpdateByID(poi.ID.String()),
		repository.UpdateColumns("archived", "address", "latitude", "longitude", "updated_at"),
	)
	if err != nil {
		return nil, mapPOIError(err, poi.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*POI, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapPOIError(err, id.String())
	}
	return result, nil
}

func mapPOIError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("poi repository error: %w", err)
}
