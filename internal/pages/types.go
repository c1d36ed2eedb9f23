package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-regioncms/internal/translations"
)

// Page is one node of a region's page tree. Archival set on a page cascades
// to its descendants; a page can splice another page's public text into its
// own rendered output through the mirror reference.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:pg"`

	ID          uuid.UUID  `bun:",pk,type:uuid"  json:"id"`
	RegionID    uuid.UUID  `bun:"region_id,notnull" json:"region_id"`
	ParentID    *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	Archived    bool       `bun:"archived"       json:"archived"`
	MirrorID    *uuid.UUID `bun:"mirror_id,type:uuid" json:"mirror_id,omitempty"`
	MirrorFirst bool       `bun:"mirror_first"   json:"mirror_first"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Parent *Page `bun:"rel:belongs-to,join:parent_id=id" json:"parent,omitempty"`
}

// IsRoot reports whether the page sits at the top of its region's tree.
func (p *Page) IsRoot() bool {
	return p.ParentID == nil
}

// ItemID implements translations.ContentItem.
func (p *Page) ItemID() uuid.UUID { return p.ID }

// ItemKind implements translations.ContentItem.
func (p *Page) ItemKind() translations.Kind { return translations.KindPage }

// ItemRegion implements translations.ContentItem.
func (p *Page) ItemRegion() uuid.UUID { return p.RegionID }
