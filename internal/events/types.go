package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-regioncms/internal/translations"
)

// Event is one dated happening in a region. Events are flat: the archived
// flag never propagates. An event can point at the location it takes place
// at and at a recurrence rule expanding it into a series.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:ev"`

	ID               uuid.UUID  `bun:",pk,type:uuid"      json:"id"`
	RegionID         uuid.UUID  `bun:"region_id,notnull"  json:"region_id"`
	Archived         bool       `bun:"archived"           json:"archived"`
	LocationID       *uuid.UUID `bun:"location_id,type:uuid" json:"location_id,omitempty"`
	RecurrenceRuleID *uuid.UUID `bun:"recurrence_rule_id,type:uuid" json:"recurrence_rule_id,omitempty"`
	StartAt          time.Time  `bun:"start_at,notnull"   json:"start_at"`
	EndAt            time.Time  `bun:"end_at,notnull"     json:"end_at"`
	CreatedAt        time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt        time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ItemID implements translations.ContentItem.
func (e *Event) ItemID() uuid.UUID { return e.ID }

// ItemKind implements translations.ContentItem.
func (e *Event) ItemKind() translations.Kind { return translations.KindEvent }

// ItemRegion implements translations.ContentItem.
func (e *Event) ItemRegion() uuid.UUID { return e.RegionID }
