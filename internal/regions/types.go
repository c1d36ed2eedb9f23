package regions

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Status tracks a region's lifecycle. Archived regions drop out of link
// validation and public lookups; hidden regions stay reachable by URL.
type Status string

const (
	StatusActive       Status = "active"
	StatusHidden       Status = "hidden"
	StatusArchived     Status = "archived"
	StatusInCloning    Status = "in-cloning"
	StatusCloningError Status = "cloning-error"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusHidden, StatusArchived, StatusInCloning, StatusCloningError:
		return true
	}
	return false
}

// Region is one municipality-scoped content space. Every content item and
// language tree node belongs to exactly one region.
type Region struct {
	bun.BaseModel `bun:"table:regions,alias:reg"`

	ID                          uuid.UUID `bun:",pk,type:uuid"                 json:"id"`
	Slug                        string    `bun:"slug,notnull,unique"           json:"slug"`
	Name                        string    `bun:"name,notnull"                  json:"name"`
	Status                      Status    `bun:"status,notnull"                json:"status"`
	ExternalNewsEnabled         bool      `bun:"external_news_enabled"         json:"external_news_enabled"`
	FallbackTranslationsEnabled bool      `bun:"fallback_translations_enabled" json:"fallback_translations_enabled"`
	CreatedAt                   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt                   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Offers []*Offer `bun:"rel:has-many,join:id=region_id" json:"offers,omitempty"`
}

// Offer is one external service a region has switched on, addressed by slug
// under the region's offers URL namespace.
type Offer struct {
	bun.BaseModel `bun:"table:region_offers,alias:off"`

	ID       uuid.UUID `bun:",pk,type:uuid"      json:"id"`
	RegionID uuid.UUID `bun:"region_id,notnull"  json:"region_id"`
	Slug     string    `bun:"slug,notnull"       json:"slug"`
	Name     string    `bun:"name,notnull"       json:"name"`
	Enabled  bool      `bun:"enabled"            json:"enabled"`
}

// PushNotification records one sent push message per (region, language).
// The notification identifier comes from the push provider and is matched
// verbatim in news URLs.
type PushNotification struct {
	bun.BaseModel `bun:"table:push_notifications,alias:push"`

	ID             uuid.UUID `bun:",pk,type:uuid"          json:"id"`
	NotificationID string    `bun:"notification_id,notnull" json:"notification_id"`
	RegionID       uuid.UUID `bun:"region_id,notnull"       json:"region_id"`
	Language       string    `bun:"language,notnull"        json:"language"`
	Sent           bool      `bun:"sent"                    json:"sent"`
	SentAt         *time.Time `bun:"sent_at"                json:"sent_at,omitempty"`
}
