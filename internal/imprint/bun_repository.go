package imprint

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewImprintRepository(db *bun.DB) repository.Repository[*Imprint] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Imprint]{
		NewRecord: func() *Imprint { return &Imprint{} },
		GetID: func(i *Imprint) uuid.UUID {
			return i.ID
		},
		SetID: func(i *Imprint, id uuid.UUID) {
			i.ID = id
		},
		GetIdentifier: func() string {
			return ""
		},
		GetIdentifierValue: func(*Imprint) string {
			return ""
		},
	})
}

// BunRepository persists imprints through bun.
type BunRepository struct {
	repo repository.Repository[*Imprint]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{repo: NewImprintRepository(db)}
}

func (r *BunRepository) Insert(ctx context.Context, imp *Imprint) (*Imprint, error) {
	created, err := r.repo.Create(ctx, imp)
	if err != nil {
		return nil, fmt.Errorf("imprint repository error: %w", err)
	}
	return created, nil
}

func (r *BunRepository) Update(ctx context.Context, imp *Imprint) (*Imprint, error) {
	updated, err := r.repo.Update(ctx, imp,
		repository.UpdateByID(imp.ID.String()),
		repository.UpdateColumns("archived", "updated_at"),
	)
	if err != nil {
		return nil, mapImprintError(err, imp.RegionID.String())
	}
	return updated, nil
}

func (r *BunRepository) GetByRegion(ctx context.Context, regionID uuid.UUID) (*Imprint, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.region_id = ?", regionID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapImprintError(err, regionID.String())
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Key: regionID.String()}
	}
	return records[0], nil
}

func mapImprintError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("imprint repository error: %w", err)
}
