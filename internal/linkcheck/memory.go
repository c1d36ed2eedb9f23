package linkcheck

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryURLStore keeps tracked URLs in memory and doubles as the Sink used
// by tests and examples.
type MemoryURLStore struct {
	mu   sync.RWMutex
	urls map[uuid.UUID]*URL
	now  func() time.Time
}

// NewMemoryURLStore creates an empty in-memory URL store.
func NewMemoryURLStore() *MemoryURLStore {
	return &MemoryURLStore{
		urls: map[uuid.UUID]*URL{},
		now:  time.Now,
	}
}

// WithClock overrides the timestamp source.
func (m *MemoryURLStore) WithClock(clock func() time.Time) *MemoryURLStore {
	if clock != nil {
		m.now = clock
	}
	return m
}

// Put stores a URL record.
func (m *MemoryURLStore) Put(u *URL) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *u
	m.urls[u.ID] = &clone
}

// Get returns a stored URL record.
func (m *MemoryURLStore) Get(id uuid.UUID) (*URL, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.urls[id]
	if !ok {
		return nil, false
	}
	clone := *u
	return &clone, true
}

func (m *MemoryURLStore) MarkValid(_ context.Context, u *URL) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	markValid(u, m.now())
	clone := *u
	m.urls[u.ID] = &clone
	return nil
}

func (m *MemoryURLStore) MarkInvalid(_ context.Context, u *URL, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	markInvalid(u, reason, m.now())
	clone := *u
	m.urls[u.ID] = &clone
	return nil
}

var _ Sink = (*MemoryURLStore)(nil)

// String makes stored URLs readable in test failures.
func (u *URL) String() string {
	return fmt.Sprintf("url(%s %s)", u.Type, u.InternalURL)
}
