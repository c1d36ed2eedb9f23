package imprint

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-regioncms/internal/translations"
)

// Imprint is a region's legal notice page. Each region has at most one, it
// sits outside the page tree, and its translations skip the review stage.
type Imprint struct {
	bun.BaseModel `bun:"table:imprints,alias:imp"`

	ID        uuid.UUID `bun:",pk,type:uuid"            json:"id"`
	RegionID  uuid.UUID `bun:"region_id,notnull,unique" json:"region_id"`
	Archived  bool      `bun:"archived"                 json:"archived"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ItemID implements translations.ContentItem.
func (i *Imprint) ItemID() uuid.UUID { return i.ID }

// ItemKind implements translations.ContentItem.
func (i *Imprint) ItemKind() translations.Kind { return translations.KindImprint }

// ItemRegion implements translations.ContentItem.
func (i *Imprint) ItemRegion() uuid.UUID { return i.RegionID }
