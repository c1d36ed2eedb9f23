package regions

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewRegionRepository(db *bun.DB) repository.Repository[*Region] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Region]{
		NewRecord: func() *Region { return &Region{} },
		GetID: func(r *Region) uuid.UUID {
			return r.ID
		},
		SetID: func(r *Region, id uuid.UUID) {
			r.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(r *Region) string {
			return r.Slug
		},
	})
}

func NewOfferRepository(db *bun.DB) repository.Repository[*Offer] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Offer]{
		NewRecord: func() *Offer { return &Offer{} },
		GetID: func(o *Offer) uuid.UUID {
			return o.ID
		},
		SetID: func(o *Offer, id uuid.UUID) {
			o.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(o *Offer) string {
			return o.Slug
		},
	})
}

func NewPushNotificationRepository(db *bun.DB) repository.Repository[*PushNotification] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*PushNotification]{
		NewRecord: func() *PushNotification { return &PushNotification{} },
		GetID: func(p *PushNotification) uuid.UUID {
			return p.ID
		},
		SetID: func(p *PushNotification, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "notification_id"
		},
		GetIdentifierValue: func(p *PushNotification) string {
			return p.NotificationID
		},
	})
}
