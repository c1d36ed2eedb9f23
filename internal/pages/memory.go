package pages

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory page store used by tests and examples.
type MemoryRepository struct {
	mu    sync.RWMutex
	pages map[uuid.UUID]*Page
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{pages: map[uuid.UUID]*Page{}}
}

func (m *MemoryRepository) Insert(_ context.Context, page *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *page
	m.pages[page.ID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) Update(_ context.Context, page *Page) (*Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pages[page.ID]; !ok {
		return nil, &NotFoundError{Key: page.ID.String()}
	}
	clone := *page
	m.pages[page.ID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	page, ok := m.pages[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	clone := *page
	return &clone, nil
}

func (m *MemoryRepository) ListByRegion(_ context.Context, regionID uuid.UUID) ([]*Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Page
	for _, page := range m.pages {
		if page.RegionID == regionID {
			clone := *page
			out = append(out, &clone)
		}
	}
	return out, nil
}
