package pages

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository persists pages through bun.
type BunRepository struct {
	repo repository.Repository[*Page]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{repo: NewPageRepository(db)}
}

func (r *BunRepository) Insert(ctx context.Context, page *Page) (*Page, error) {
	created, err := r.repo.Create(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("page repository error: %w", err)
	}
	return created, nil
}

func (r *BunRepository) Update(ctx context.Context, page *Page) (*Page, error) {
	updated, err := r.repo.Update(ctx, page,
		repository.UpdateByID(page.ID.String()),
		repository.UpdateColumns("parent_id", "archived", "mirror_id", "mirror_first", "updated_at"),
	)
	if err != nil {
		return nil, mapPageError(err, page.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Page, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapPageError(err, id.String())
	}
	return result, nil
}

func (r *BunRepository) ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.region_id = ?", regionID)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("page repository error: %w", err)
	}
	return records, nil
}

func mapPageError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("page repository error: %w", err)
}
