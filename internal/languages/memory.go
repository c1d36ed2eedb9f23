package languages

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryNodeRepository is an in-memory node store for scaffolding/tests.
type MemoryNodeRepository struct {
	mu    sync.RWMutex
	nodes map[uuid.UUID]*TreeNode
	index map[string]uuid.UUID
}

// NewMemoryNodeRepository constructs the repository.
func NewMemoryNodeRepository() *MemoryNodeRepository {
	return &MemoryNodeRepository{
		nodes: make(map[uuid.UUID]*TreeNode),
		index: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied node.
func (m *MemoryNodeRepository) Create(_ context.Context, node *TreeNode) (*TreeNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := cloneNode(node)
	m.nodes[copied.ID] = copied
	m.index[nodeKey(copied.RegionID, copied.LanguageCode)] = copied.ID
	return cloneNode(copied), nil
}

// Update persists changes for a node.
func (m *MemoryNodeRepository) Update(_ context.Context, node *TreeNode) (*TreeNode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.nodes[node.ID]
	if !ok {
		return nil, &NodeNotFoundError{Key: node.ID.String()}
	}
	delete(m.index, nodeKey(current.RegionID, current.LanguageCode))
	copied := cloneNode(node)
	m.nodes[copied.ID] = copied
	m.index[nodeKey(copied.RegionID, copied.LanguageCode)] = copied.ID
	return cloneNode(copied), nil
}

// GetByID retrieves a node by identifier.
func (m *MemoryNodeRepository) GetByID(_ context.Context, id uuid.UUID) (*TreeNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	node, ok := m.nodes[id]
	if !ok {
		return nil, &NodeNotFoundError{Key: id.String()}
	}
	return cloneNode(node), nil
}

// GetByLanguage retrieves the region's node for a language code.
func (m *MemoryNodeRepository) GetByLanguage(_ context.Context, regionID uuid.UUID, code string) (*TreeNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.index[nodeKey(regionID, code)]
	if !ok {
		return nil, &NodeNotFoundError{Key: code}
	}
	return cloneNode(m.nodes[id]), nil
}

// ListByRegion returns every node of one region.
func (m *MemoryNodeRepository) ListByRegion(_ context.Context, regionID uuid.UUID) ([]*TreeNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*TreeNode, 0)
	for _, node := range m.nodes {
		if node == nil || node.RegionID != regionID {
			continue
		}
		out = append(out, cloneNode(node))
	}
	return out, nil
}

// MemoryLanguageRepository is an in-memory language store for scaffolding/tests.
type MemoryLanguageRepository struct {
	mu        sync.RWMutex
	languages map[string]*Language
}

// NewMemoryLanguageRepository constructs the repository.
func NewMemoryLanguageRepository() *MemoryLanguageRepository {
	return &MemoryLanguageRepository{languages: make(map[string]*Language)}
}

// Put stores a language record.
func (m *MemoryLanguageRepository) Put(lang *Language) {
	if lang == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *lang
	m.languages[strings.ToLower(lang.Code)] = &copied
}

// GetByCode retrieves a language by its code.
func (m *MemoryLanguageRepository) GetByCode(_ context.Context, code string) (*Language, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lang, ok := m.languages[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, &LanguageNotFoundError{Key: code}
	}
	copied := *lang
	return &copied, nil
}

func nodeKey(regionID uuid.UUID, code string) string {
	return regionID.String() + "|" + strings.ToLower(strings.TrimSpace(code))
}

func cloneNode(src *TreeNode) *TreeNode {
	if src == nil {
		return nil
	}
	copied := *src
	if src.ParentID != nil {
		parentID := *src.ParentID
		copied.ParentID = &parentID
	}
	copied.Language = nil
	copied.Parent = nil
	return &copied
}
