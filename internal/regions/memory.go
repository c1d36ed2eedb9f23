package regions

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests and examples.
type MemoryRepository struct {
	mu      sync.RWMutex
	regions map[uuid.UUID]*Region
	offers  map[uuid.UUID][]*Offer
	pushes  []*PushNotification
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		regions: map[uuid.UUID]*Region{},
		offers:  map[uuid.UUID][]*Offer{},
	}
}

func (m *MemoryRepository) Insert(_ context.Context, region *Region) (*Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *region
	m.regions[region.ID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) Update(_ context.Context, region *Region) (*Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.regions[region.ID]; !ok {
		return nil, &NotFoundError{Key: region.ID.String()}
	}
	clone := *region
	m.regions[region.ID] = &clone
	out := clone
	return &out, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Region, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	region, ok := m.regions[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	clone := *region
	return &clone, nil
}

func (m *MemoryRepository) GetBySlug(_ context.Context, slugValue string) (*Region, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, region := range m.regions {
		if region.Slug == slugValue {
			clone := *region
			return &clone, nil
		}
	}
	return nil, &NotFoundError{Key: slugValue}
}

func (m *MemoryRepository) InsertOffer(_ context.Context, offer *Offer) (*Offer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *offer
	m.offers[offer.RegionID] = append(m.offers[offer.RegionID], &clone)
	out := clone
	return &out, nil
}

func (m *MemoryRepository) GetOffer(_ context.Context, regionID uuid.UUID, offerSlug string) (*Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, offer := range m.offers[regionID] {
		if offer.Slug == offerSlug {
			clone := *offer
			return &clone, nil
		}
	}
	return nil, &NotFoundError{Key: offerSlug}
}

func (m *MemoryRepository) ListOffers(_ context.Context, regionID uuid.UUID) ([]*Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Offer, 0, len(m.offers[regionID]))
	for _, offer := range m.offers[regionID] {
		clone := *offer
		out = append(out, &clone)
	}
	return out, nil
}

func (m *MemoryRepository) InsertPush(_ context.Context, push *PushNotification) (*PushNotification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *push
	m.pushes = append(m.pushes, &clone)
	out := clone
	return &out, nil
}

func (m *MemoryRepository) GetPush(_ context.Context, regionID uuid.UUID, notificationID, language string) (*PushNotification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, push := range m.pushes {
		if push.RegionID == regionID && push.NotificationID == notificationID && push.Language == language {
			clone := *push
			return &clone, nil
		}
	}
	return nil, &NotFoundError{Key: notificationID}
}
