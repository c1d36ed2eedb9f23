package regions

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository persists regions and their related rows through bun.
type BunRepository struct {
	regions repository.Repository[*Region]
	offers  repository.Repository[*Offer]
	pushes  repository.Repository[*PushNotification]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{
		regions: NewRegionRepository(db),
		offers:  NewOfferRepository(db),
		pushes:  NewPushNotificationRepository(db),
	}
}

func (r *BunRepository) Insert(ctx context.Context, region *Region) (*Region, error) {
	created, err := r.regions.Create(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("region repository error: %w", err)
	}
	return created, nil
}

func (r *BunRepository) Update(ctx context.Context, region *Region) (*Region, error) {
	updated, err := r.regions.Update(ctx, region,
		repository.UpdateByID(region.ID.String()),
		repository.UpdateColumns("name", "status", "external_news_enabled", "fallback_translations_enabled", "updated_at"),
	)
	if err != nil {
		return nil, mapRegionError(err, region.ID.String())
	}
	return updated, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Region, error) {
	result, err := r.regions.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRegionError(err, id.String())
	}
	return result, nil
}

func (r *BunRepository) GetBySlug(ctx context.Context, slugValue string) (*Region, error) {
	result, err := r.regions.GetByIdentifier(ctx, slugValue)
	if err != nil {
		return nil, mapRegionError(err, slugValue)
	}
	return result, nil
}

func (r *BunRepository) InsertOffer(ctx context.Context, offer *Offer) (*Offer, error) {
	created, err := r.offers.Create(ctx, offer)
	if err != nil {
		return nil, fmt.Errorf("region repository error: %w", err)
	}
	return created, nil
}

func (r *BunRepository) GetOffer(ctx context.Context, regionID uuid.UUID, offerSlug string) (*Offer, error) {
	records, _, err := r.offers.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.region_id = ?", regionID).
				Where("?TableAlias.slug = ?", offerSlug)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRegionError(err, offerSlug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Key: offerSlug}
	}
	return records[0], nil
}

func (r *BunRepository) ListOffers(ctx context.Context, regionID uuid.UUID) ([]*Offer, error) {
	records, _, err := r.offers.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.region_id = ?", regionID)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("region repository error: %w", err)
	}
	return records, nil
}

func (r *BunRepository) InsertPush(ctx context.Context, push *PushNotification) (*PushNotification, error) {
	created, err := r.pushes.Create(ctx, push)
	if err != nil {
		return nil, fmt.Errorf("region repository error: %w", err)
	}
	return created, nil
}

func (r *BunRepository) GetPush(ctx context.Context, regionID uuid.UUID, notificationID, language string) (*PushNotification, error) {
	records, _, err := r.pushes.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.region_id = ?", regionID).
				Where("?TableAlias.notification_id = ?", notificationID).
				Where("lower(?TableAlias.language) = lower(?)", language)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRegionError(err, notificationID)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Key: notificationID}
	}
	return records[0], nil
}

func mapRegionError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("region repository error: %w", err)
}
