package translations

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunStore persists revision rows through bun.
type BunStore struct {
	repo repository.Repository[*Revision]
}

func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{repo: NewRevisionRepository(db)}
}

func (r *BunStore) ListRevisions(ctx context.Context, itemID uuid.UUID, language string) ([]*Revision, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.item_id = ?", itemID).
				Where("lower(?TableAlias.language) = lower(?)", language).
				Order("version ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("revision repository error: %w", err)
	}
	return records, nil
}

func (r *BunStore) InsertRevision(ctx context.Context, rev *Revision) (*Revision, error) {
	created, err := r.repo.Create(ctx, rev)
	if err != nil {
		// The unique (item, language, version) index rejects the loser of a
		// concurrent append.
		return nil, fmt.Errorf("revision repository error: %w", err)
	}
	return created, nil
}

func (r *BunStore) UpdateRevision(ctx context.Context, rev *Revision) (*Revision, error) {
	updated, err := r.repo.Update(ctx, rev,
		repository.UpdateByID(rev.ID.String()),
		repository.UpdateColumns("status", "minor_edit", "currently_in_translation", "last_updated"),
	)
	if err != nil {
		if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, &RevisionNotFoundError{ItemID: rev.ItemID, Language: rev.Language, Version: rev.Version}
		}
		return nil, fmt.Errorf("revision repository error: %w", err)
	}
	return updated, nil
}

func (r *BunStore) FindItemsBySlug(ctx context.Context, kind Kind, regionID uuid.UUID, language, slugValue string) ([]uuid.UUID, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.item_kind = ?", string(kind)).
				Where("?TableAlias.region_id = ?", regionID).
				Where("lower(?TableAlias.language) = lower(?)", language).
				Where("?TableAlias.slug = ?", slugValue)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("revision repository error: %w", err)
	}

	seen := map[uuid.UUID]struct{}{}
	out := make([]uuid.UUID, 0, len(records))
	for _, rev := range records {
		if _, ok := seen[rev.ItemID]; ok {
			continue
		}
		seen[rev.ItemID] = struct{}{}
		out = append(out, rev.ItemID)
	}
	return out, nil
}
