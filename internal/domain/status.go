package domain

import "strings"

// Status represents lifecycle states for translation revisions.
type Status string

const (
	// StatusDraft indicates a revision still under preparation.
	StatusDraft Status = "draft"
	// StatusReview marks a revision waiting for editorial approval.
	StatusReview Status = "review"
	// StatusPublic identifies a revision visible to consumers.
	StatusPublic Status = "public"
)

// ParseStatus normalizes raw status input, defaulting to draft.
func ParseStatus(raw string) (Status, bool) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusDraft, "":
		return StatusDraft, true
	case StatusReview:
		return StatusReview, true
	case StatusPublic:
		return StatusPublic, true
	default:
		return StatusDraft, false
	}
}

// Valid reports whether the status is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusReview, StatusPublic:
		return true
	default:
		return false
	}
}
