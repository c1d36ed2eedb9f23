package linkcheck

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// URLType classifies a tracked URL. Only internal URLs are validated here;
// external URLs belong to an HTTP checker outside this engine.
type URLType string

const (
	TypeInternal URLType = "internal"
	TypeExternal URLType = "external"
	TypeEmpty    URLType = "empty"
)

// URL is one tracked link occurrence. The validator treats it as a
// side-effecting sink: evaluation never mutates it, Apply does.
type URL struct {
	bun.BaseModel `bun:"table:urls,alias:url"`

	ID           uuid.UUID  `bun:",pk,type:uuid"  json:"id"`
	Type         URLType    `bun:"type,notnull"   json:"type"`
	InternalURL  string     `bun:"internal_url"   json:"internal_url"`
	Status       *bool      `bun:"status"         json:"status,omitempty"`
	StatusCode   *int       `bun:"status_code"    json:"status_code,omitempty"`
	ErrorMessage string     `bun:"error_message"  json:"error_message"`
	LastChecked  *time.Time `bun:"last_checked"   json:"last_checked,omitempty"`
}

// Outcome is the terminal classification of one validation.
type Outcome string

const (
	OutcomeValid   Outcome = "valid"
	OutcomeInvalid Outcome = "invalid"
	OutcomeSkipped Outcome = "skipped"
)

// Result is what evaluating one URL produces. Reason is set only for
// invalid outcomes.
type Result struct {
	Outcome Outcome
	Reason  string
}

// Valid reports whether the link resolved to existing, reachable content.
func (r Result) Valid() bool { return r.Outcome == OutcomeValid }

// Invalid reports whether the link was rejected.
func (r Result) Invalid() bool { return r.Outcome == OutcomeInvalid }
