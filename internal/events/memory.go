package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory event store used by tests and examples.
type MemoryRepository struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*Event
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{events: map[uuid.UUID]*Event{}}
}

func (m *MemoryRepository) Insert(_ context.Context, event *Event) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *event
	m.events[event.ID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) Update(_ context.Context, event *Event) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.events[event.ID]; !ok {
		return nil, &NotFoundError{Key: event.ID.String()}
	}
	clone := *event
	m.events[event.ID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	event, ok := m.events[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	clone := *event
	return &clone, nil
}
