package pages

import (
	"errors"
	"fmt"
)

var (
	ErrPageRequired      = errors.New("pages: page id required")
	ErrRegionRequired    = errors.New("pages: region id required")
	ErrParentNotFound    = errors.New("pages: parent page not found")
	ErrCrossRegionParent = errors.New("pages: parent page belongs to another region")
	ErrParentCycle       = errors.New("pages: move would place page inside its own subtree")
	ErrMirrorNotFound    = errors.New("pages: mirrored page not found")
	ErrSelfMirror        = errors.New("pages: page cannot mirror itself")
)

// NotFoundError represents a missing page lookup.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return "page not found"
	}
	return fmt.Sprintf("page %q not found", e.Key)
}
