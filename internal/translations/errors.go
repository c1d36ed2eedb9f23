package translations

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrItemRequired        = errors.New("translations: content item required")
	ErrKindInvalid         = errors.New("translations: unknown content kind")
	ErrLanguageRequired    = errors.New("translations: language code required")
	ErrTitleRequired       = errors.New("translations: title is required")
	ErrSlugInvalid         = errors.New("translations: slug contains invalid characters")
	ErrStatusInvalid       = errors.New("translations: unknown revision status")
	ErrReviewNotSupported  = errors.New("translations: imprint revisions do not support the review status")
	ErrVersionConflict     = errors.New("translations: concurrent save produced a conflicting version")
)

// RevisionNotFoundError represents a missing revision row.
type RevisionNotFoundError struct {
	ItemID   uuid.UUID
	Language string
	Version  int
}

func (e *RevisionNotFoundError) Error() string {
	if e == nil {
		return "translation revision not found"
	}
	return fmt.Sprintf("translation revision not found: item=%s language=%s version=%d",
		e.ItemID, e.Language, e.Version)
}
