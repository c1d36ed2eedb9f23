package languages

import (
	"errors"
	"fmt"
)

var (
	ErrRegionRequired       = errors.New("languages: region id required")
	ErrLanguageRequired     = errors.New("languages: language code required")
	ErrNodeRequired         = errors.New("languages: node id required")
	ErrUnknownLanguage      = errors.New("languages: unknown language")
	ErrLanguageNodeExists   = errors.New("languages: region already has a node for this language")
	ErrRootExists           = errors.New("languages: region already has a root node")
	ErrParentNotFound       = errors.New("languages: parent node not found")
	ErrCrossRegionParent    = errors.New("languages: parent node belongs to another region")
	ErrNodeCycle            = errors.New("languages: move would place node inside its own subtree")
)

// NodeNotFoundError represents a missing tree node lookup.
type NodeNotFoundError struct {
	Key string
}

func (e *NodeNotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return "language tree node not found"
	}
	return fmt.Sprintf("language tree node %q not found", e.Key)
}

// LanguageNotFoundError represents a missing language lookup.
type LanguageNotFoundError struct {
	Key string
}

func (e *LanguageNotFoundError) Error() string {
	if e == nil || e.Key == "" {
		return "language not found"
	}
	return fmt.Sprintf("language %q not found", e.Key)
}
