package imprint

import (
	"errors"
	"fmt"
)

var (
	ErrRegionRequired = errors.New("imprint: region id required")
	ErrImprintExists  = errors.New("imprint: region already has an imprint")
)

// NotFoundError represents a missing imprint lookup.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return "imprint not found"
	}
	return fmt.Sprintf("imprint for region %q not found", e.Key)
}
