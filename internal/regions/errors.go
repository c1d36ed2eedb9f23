package regions

import (
	"errors"
	"fmt"
)

var (
	ErrSlugRequired   = errors.New("regions: slug required")
	ErrNameRequired   = errors.New("regions: name required")
	ErrStatusInvalid  = errors.New("regions: invalid status")
	ErrRegionExists   = errors.New("regions: slug already taken")
	ErrRegionRequired = errors.New("regions: region id required")
)

// NotFoundError represents a missing region lookup.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return "region not found"
	}
	return fmt.Sprintf("region %q not found", e.Key)
}
