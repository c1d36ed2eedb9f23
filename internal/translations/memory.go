package translations

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory revision store for scaffolding/tests.
type MemoryStore struct {
	mu        sync.RWMutex
	revisions map[string][]*Revision
}

// NewMemoryStore constructs the store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{revisions: make(map[string][]*Revision)}
}

// ListRevisions returns every revision of one (item, language) pair.
func (m *MemoryStore) ListRevisions(_ context.Context, itemID uuid.UUID, language string) ([]*Revision, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rows := m.revisions[pairKey(itemID, language)]
	out := make([]*Revision, 0, len(rows))
	for _, rev := range rows {
		out = append(out, cloneRevision(rev))
	}
	return out, nil
}

// InsertRevision appends a new revision row.
func (m *MemoryStore) InsertRevision(_ context.Context, rev *Revision) (*Revision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey(rev.ItemID, rev.Language)
	for _, existing := range m.revisions[key] {
		if existing.Version == rev.Version {
			return nil, ErrVersionConflict
		}
	}
	m.revisions[key] = append(m.revisions[key], cloneRevision(rev))
	return cloneRevision(rev), nil
}

// UpdateRevision replaces a stored revision row in place.
func (m *MemoryStore) UpdateRevision(_ context.Context, rev *Revision) (*Revision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := pairKey(rev.ItemID, rev.Language)
	rows := m.revisions[key]
	for idx, existing := range rows {
		if existing.ID == rev.ID {
			rows[idx] = cloneRevision(rev)
			return cloneRevision(rev), nil
		}
	}
	return nil, &RevisionNotFoundError{ItemID: rev.ItemID, Language: rev.Language, Version: rev.Version}
}

// FindItemsBySlug returns distinct item ids carrying the slug in any revision.
func (m *MemoryStore) FindItemsBySlug(_ context.Context, kind Kind, regionID uuid.UUID, language, slugValue string) ([]uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := map[uuid.UUID]struct{}{}
	out := make([]uuid.UUID, 0)
	for _, rows := range m.revisions {
		for _, rev := range rows {
			if rev.ItemKind != kind || rev.RegionID != regionID {
				continue
			}
			if !strings.EqualFold(rev.Language, language) || rev.Slug != slugValue {
				continue
			}
			if _, ok := seen[rev.ItemID]; ok {
				continue
			}
			seen[rev.ItemID] = struct{}{}
			out = append(out, rev.ItemID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

func pairKey(itemID uuid.UUID, language string) string {
	return itemID.String() + "|" + strings.ToLower(strings.TrimSpace(language))
}

func cloneRevision(src *Revision) *Revision {
	if src == nil {
		return nil
	}
	copied := *src
	if src.CreatorID != nil {
		creator := *src.CreatorID
		copied.CreatorID = &creator
	}
	return &copied
}
