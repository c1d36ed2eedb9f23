package languages

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunNodeRepository persists tree nodes through bun.
type BunNodeRepository struct {
	repo repository.Repository[*TreeNode]
}

func NewBunNodeRepository(db *bun.DB) *BunNodeRepository {
	return &BunNodeRepository{repo: NewTreeNodeRepository(db)}
}

func (r *BunNodeRepository) Create(ctx context.Context, node *TreeNode) (*TreeNode, error) {
	created, err := r.repo.Create(ctx, node)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *BunNodeRepository) Update(ctx context.Context, node *TreeNode) (*TreeNode, error) {
	updated, err := r.repo.Update(ctx, node,
		repository.UpdateByID(node.ID.String()),
		repository.UpdateColumns("parent_id", "visible", "active", "updated_at"),
	)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *BunNodeRepository) GetByID(ctx context.Context, id uuid.UUID) (*TreeNode, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapNodeError(err, id.String())
	}
	return result, nil
}

func (r *BunNodeRepository) GetByLanguage(ctx context.Context, regionID uuid.UUID, code string) (*TreeNode, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.region_id = ?", regionID).
				Where("lower(?TableAlias.language_code) = lower(?)", code)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapNodeError(err, code)
	}
	if len(records) == 0 {
		return nil, &NodeNotFoundError{Key: code}
	}
	return records[0], nil
}

func (r *BunNodeRepository) ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*TreeNode, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.region_id = ?", regionID)
		}),
	)
	return records, err
}

// BunLanguageRepository resolves global languages through bun.
type BunLanguageRepository struct {
	repo repository.Repository[*Language]
}

func NewBunLanguageRepository(db *bun.DB) *BunLanguageRepository {
	return &BunLanguageRepository{repo: NewLanguageRepository(db)}
}

func (r *BunLanguageRepository) GetByCode(ctx context.Context, code string) (*Language, error) {
	result, err := r.repo.GetByIdentifier(ctx, code)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, &LanguageNotFoundError{Key: code}
		}
		return nil, fmt.Errorf("language repository error: %w", err)
	}
	return result, nil
}

func mapNodeError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NodeNotFoundError{Key: key}
	}
	return fmt.Errorf("language tree repository error: %w", err)
}
