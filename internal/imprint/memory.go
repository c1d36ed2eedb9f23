package imprint

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory imprint store used by tests and examples.
type MemoryRepository struct {
	mu       sync.RWMutex
	imprints map[uuid.UUID]*Imprint // keyed by region
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{imprints: map[uuid.UUID]*Imprint{}}
}

func (m *MemoryRepository) Insert(_ context.Context, imp *Imprint) (*Imprint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.imprints[imp.RegionID]; ok {
		return nil, ErrImprintExists
	}
	clone := *imp
	m.imprints[imp.RegionID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) Update(_ context.Context, imp *Imprint) (*Imprint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.imprints[imp.RegionID]; !ok {
		return nil, &NotFoundError{Key: imp.RegionID.String()}
	}
	clone := *imp
	m.imprints[imp.RegionID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) GetByRegion(_ context.Context, regionID uuid.UUID) (*Imprint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	imp, ok := m.imprints[regionID]
	if !ok {
		return nil, &NotFoundError{Key: regionID.String()}
	}
	clone := *imp
	return &clone, nil
}
