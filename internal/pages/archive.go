package pages

import "github.com/google/uuid"

// ExplicitlyArchived reports the page's own stored flag.
func ExplicitlyArchived(page *Page) bool {
	return page != nil && page.Archived
}

// ImplicitlyArchived reports whether any ancestor of the page is explicitly
// archived, resolved against the supplied page set. Pages whose parent is not
// in the set terminate the walk.
func ImplicitlyArchived(page *Page, set []*Page) bool {
	if page == nil {
		return false
	}
	index := indexByID(set)
	seen := map[uuid.UUID]struct{}{page.ID: {}}
	for current := page; current != nil && current.ParentID != nil; {
		parent, ok := index[*current.ParentID]
		if !ok {
			return false
		}
		if _, visited := seen[parent.ID]; visited {
			return false
		}
		seen[parent.ID] = struct{}{}
		if parent.Archived {
			return true
		}
		current = parent
	}
	return false
}

// Archived reports whether the page is archived explicitly or through an
// ancestor.
func Archived(page *Page, set []*Page) bool {
	return ExplicitlyArchived(page) || ImplicitlyArchived(page, set)
}

// PartitionArchived splits the page set into the archived set (explicitly
// archived pages plus all their descendants) and its complement. Every page
// lands in exactly one of the two slices.
func PartitionArchived(set []*Page) (archived, active []*Page) {
	for _, page := range set {
		if Archived(page, set) {
			archived = append(archived, page)
		} else {
			active = append(active, page)
		}
	}
	return archived, active
}

func indexByID(set []*Page) map[uuid.UUID]*Page {
	index := make(map[uuid.UUID]*Page, len(set))
	for _, page := range set {
		index[page.ID] = page
	}
	return index
}
