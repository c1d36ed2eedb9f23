package events

import (
	"errors"
	"fmt"
)

var (
	ErrEventRequired    = errors.New("events: event id required")
	ErrRegionRequired   = errors.New("events: region id required")
	ErrTimeRangeInvalid = errors.New("events: end must not precede start")
)

// NotFoundError represents a missing event lookup.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return "event not found"
	}
	return fmt.Sprintf("event %q not found", e.Key)
}
