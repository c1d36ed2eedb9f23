package pois

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-regioncms/internal/translations"
)

// POI is one point of interest in a region. POIs are flat: the archived flag
// never propagates.
type POI struct {
	bun.BaseModel `bun:"table:pois,alias:poi"`

	ID        uuid.UUID `bun:",pk,type:uuid"     json:"id"`
	RegionID  uuid.UUID `bun:"region_id,notnull" json:"region_id"`
	Archived  bool      `bun:"archived"          json:"archived"`
	Address   string    `bun:"address"           json:"address"`
	Latitude  *float64  `bun:"latitude"          json:"latitude,omitempty"`
	Longitude *float64  `bun:"longitude"         json:"longitude,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ItemID implements translations.ContentItem.
func (p *POI) ItemID() uuid.UUID { return p.ID }

// ItemKind implements translations.ContentItem.
func (p *POI) ItemKind() translations.Kind { return translations.KindLocation }

// ItemRegion implements translations.ContentItem.
func (p *POI) ItemRegion() uuid.UUID { return p.RegionID }
