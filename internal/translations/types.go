package translations

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-regioncms/internal/domain"
)

// Kind identifies the content type a revision belongs to. All four kinds
// share one revision table and one chain implementation.
type Kind string

const (
	KindPage     Kind = "page"
	KindEvent    Kind = "event"
	KindLocation Kind = "location"
	KindImprint  Kind = "imprint"
)

// Valid reports whether the kind is one of the known content types.
func (k Kind) Valid() bool {
	switch k {
	case KindPage, KindEvent, KindLocation, KindImprint:
		return true
	default:
		return false
	}
}

// ContentItem is the capability surface content types expose to the revision
// and freshness machinery. Pages, events, locations and imprints all satisfy
// it.
type ContentItem interface {
	ItemID() uuid.UUID
	ItemKind() Kind
	ItemRegion() uuid.UUID
}

// Revision is one row of a translation's history for a (content item,
// language) pair. Versions start at 0 and increase without gaps; saving
// either mutates the newest row in place or appends the next version,
// depending on whether a significant field changed.
type Revision struct {
	bun.BaseModel `bun:"table:translation_revisions,alias:tr"`

	ID                     uuid.UUID     `bun:",pk,type:uuid"                json:"id"`
	ItemID                 uuid.UUID     `bun:"item_id,notnull,type:uuid"    json:"item_id"`
	ItemKind               Kind          `bun:"item_kind,notnull"            json:"item_kind"`
	RegionID               uuid.UUID     `bun:"region_id,notnull,type:uuid"  json:"region_id"`
	Language               string        `bun:"language,notnull"             json:"language"`
	Version                int           `bun:"version,notnull"              json:"version"`
	Status                 domain.Status `bun:"status,notnull,default:'draft'" json:"status"`
	Title                  string        `bun:"title,notnull"                json:"title"`
	Slug                   string        `bun:"slug,notnull"                 json:"slug"`
	Text                   string        `bun:"text"                         json:"text"`
	MinorEdit              bool          `bun:"minor_edit,notnull,default:false" json:"minor_edit"`
	CurrentlyInTranslation bool          `bun:"currently_in_translation,notnull,default:false" json:"currently_in_translation"`
	CreatorID              *uuid.UUID    `bun:"creator_id,type:uuid,nullzero" json:"creator_id,omitempty"`
	CreatedAt              time.Time     `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	LastUpdated            time.Time     `bun:"last_updated,nullzero,default:current_timestamp" json:"last_updated"`
}

// Public reports whether the revision is visible to consumers.
func (r *Revision) Public() bool {
	return r != nil && r.Status == domain.StatusPublic
}

// Chain is a read view over the ordered revision history of one
// (content item, language) pair.
type Chain struct {
	revisions []*Revision
}

// NewChain builds a chain from revision rows, ordering them by version. The
// input slice is not retained.
func NewChain(revisions []*Revision) *Chain {
	out := make([]*Revision, 0, len(revisions))
	for _, rev := range revisions {
		if rev != nil {
			out = append(out, rev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return &Chain{revisions: out}
}

// Len returns the number of revisions in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.revisions)
}

// Revisions returns the chain's rows ordered by version, oldest first.
func (c *Chain) Revisions() []*Revision {
	if c == nil {
		return nil
	}
	out := make([]*Revision, len(c.revisions))
	copy(out, c.revisions)
	return out
}

// Latest returns the highest-version revision, or nil for an empty chain.
func (c *Chain) Latest() *Revision {
	if c.Len() == 0 {
		return nil
	}
	return c.revisions[len(c.revisions)-1]
}

// LatestPublic returns the highest-version public revision.
func (c *Chain) LatestPublic() *Revision {
	if c == nil {
		return nil
	}
	for i := len(c.revisions) - 1; i >= 0; i-- {
		if c.revisions[i].Public() {
			return c.revisions[i]
		}
	}
	return nil
}

// LatestMajorPublic returns the highest-version public revision that is not a
// minor edit. This is the timestamp anchor for freshness comparisons.
func (c *Chain) LatestMajorPublic() *Revision {
	if c == nil {
		return nil
	}
	for i := len(c.revisions) - 1; i >= 0; i-- {
		if c.revisions[i].Public() && !c.revisions[i].MinorEdit {
			return c.revisions[i]
		}
	}
	return nil
}

// Previous returns the revision directly below the latest version, if any.
func (c *Chain) Previous() *Revision {
	latest := c.Latest()
	if latest == nil {
		return nil
	}
	for i := len(c.revisions) - 1; i >= 0; i-- {
		if c.revisions[i].Version == latest.Version-1 {
			return c.revisions[i]
		}
	}
	return nil
}
