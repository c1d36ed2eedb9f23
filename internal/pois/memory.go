package pois

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory POI store used by tests and examples.
type MemoryRepository struct {
	mu   sync.RWMutex
	pois map[uuid.UUID]*POI
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{pois: map[uuid.UUID]*POI{}}
}

func (m *MemoryRepository) Insert(_ context.Context, poi *POI) (*POI, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *poi
	m.pois[poi.ID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) Update(_ context.Context, poi *POI) (*POI, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pois[poi.ID]; !ok {
		return nil, &NotFoundError{Key: poi.ID.String()}
	}
	clone := *poi
	m.pois[poi.ID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*POI, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	poi, ok := m.pois[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	clone := *poi
	return &clone, nil
}
