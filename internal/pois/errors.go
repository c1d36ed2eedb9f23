package pois

import (
	"errors"
	"fmt"
)

var (
	ErrPOIRequired    = errors.New("pois: poi id required")
	ErrRegionRequired = errors.New("pois: region id required")
)

// NotFoundError represents a missing POI lookup.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return "poi not found"
	}
	return fmt.Sprintf("poi %q not found", e.Key)
}
