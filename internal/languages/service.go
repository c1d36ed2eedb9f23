package languages

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/logging"
	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

// Service exposes language tree use cases for one or more regions.
type Service interface {
	Resolve(ctx context.Context, regionID uuid.UUID, code string) (*TreeNode, error)
	SourceLanguageOf(ctx context.Context, regionID uuid.UUID, code string) (string, bool, error)
	Root(ctx context.Context, regionID uuid.UUID) (*TreeNode, error)
	Ancestors(ctx context.Context, nodeID uuid.UUID) ([]*TreeNode, error)
	Descendants(ctx context.Context, nodeID uuid.UUID) ([]*TreeNode, error)
	CreateNode(ctx context.Context, req CreateNodeRequest) (*TreeNode, error)
	MoveNode(ctx context.Context, req MoveNodeRequest) (*TreeNode, error)
}

// NodeRepository abstracts storage for language tree nodes.
type NodeRepository interface {
	Create(ctx context.Context, node *TreeNode) (*TreeNode, error)
	Update(ctx context.Context, node *TreeNode) (*TreeNode, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TreeNode, error)
	GetByLanguage(ctx context.Context, regionID uuid.UUID, code string) (*TreeNode, error)
	ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*TreeNode, error)
}

// LanguageRepository resolves global language records.
type LanguageRepository interface {
	GetByCode(ctx context.Context, code string) (*Language, error)
}

// CreateNodeRequest captures the fields required to add a language to a region.
type CreateNodeRequest struct {
	RegionID     uuid.UUID
	LanguageCode string
	ParentID     *uuid.UUID
	Visible      bool
	Active       bool
}

// Validate ensures the request carries the required identifiers.
func (req CreateNodeRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.RegionID, validation.By(requireUUID(ErrRegionRequired))),
		validation.Field(&req.LanguageCode, validation.Required.Error(ErrLanguageRequired.Error())),
	)
}

// MoveNodeRequest captures a reparenting operation for an existing node.
type MoveNodeRequest struct {
	NodeID      uuid.UUID
	NewParentID *uuid.UUID
}

// Validate ensures the request identifies a node.
func (req MoveNodeRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.NodeID, validation.By(requireUUID(ErrNodeRequired))),
	)
}

func requireUUID(sentinel error) validation.RuleFunc {
	return func(value any) error {
		id, ok := value.(uuid.UUID)
		if !ok || id == uuid.Nil {
			return sentinel
		}
		return nil
	}
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides node identifier generation.
func WithIDGenerator(generator func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLoggerProvider attaches a logger provider to the service.
func WithLoggerProvider(provider interfaces.LoggerProvider) ServiceOption {
	return func(s *service) {
		s.logger = logging.LanguagesLogger(provider)
	}
}

type service struct {
	nodes     NodeRepository
	languages LanguageRepository
	now       func() time.Time
	id        func() uuid.UUID
	logger    interfaces.Logger
}

// NewService constructs a language tree service.
func NewService(nodes NodeRepository, langs LanguageRepository, opts ...ServiceOption) Service {
	s := &service{
		nodes:     nodes,
		languages: langs,
		now:       time.Now,
		id:        uuid.New,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve returns the region's node for a language code.
func (s *service) Resolve(ctx context.Context, regionID uuid.UUID, code string) (*TreeNode, error) {
	if regionID == uuid.Nil {
		return nil, ErrRegionRequired
	}
	if code == "" {
		return nil, ErrLanguageRequired
	}
	return s.nodes.GetByLanguage(ctx, regionID, code)
}

// SourceLanguageOf returns the language one level up the tree. The boolean is
// false for the root language and for languages the region does not carry.
func (s *service) SourceLanguageOf(ctx context.Context, regionID uuid.UUID, code string) (string, bool, error) {
	node, err := s.Resolve(ctx, regionID, code)
	if err != nil {
		var notFound *NodeNotFoundError
		if errors.As(err, &notFound) {
			return "", false, nil
		}
		return "", false, err
	}
	if node.ParentID == nil {
		return "", false, nil
	}
	parent, err := s.nodes.GetByID(ctx, *node.ParentID)
	if err != nil {
		return "", false, err
	}
	return parent.LanguageCode, true, nil
}

// Root returns the region's default language node.
func (s *service) Root(ctx context.Context, regionID uuid.UUID) (*TreeNode, error) {
	if regionID == uuid.Nil {
		return nil, ErrRegionRequired
	}
	nodes, err := s.nodes.ListByRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	for _, node := range nodes {
		if node.IsRoot() {
			return node, nil
		}
	}
	return nil, &NodeNotFoundError{Key: regionID.String()}
}

// Ancestors walks parent pointers up to the root, nearest ancestor first.
func (s *service) Ancestors(ctx context.Context, nodeID uuid.UUID) ([]*TreeNode, error) {
	node, err := s.nodes.GetByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	var chain []*TreeNode
	seen := map[uuid.UUID]struct{}{node.ID: {}}
	for node.ParentID != nil {
		parent, err := s.nodes.GetByID(ctx, *node.ParentID)
		if err != nil {
			return nil, err
		}
		// Guards against a corrupted parent chain.
		if _, ok := seen[parent.ID]; ok {
			break
		}
		seen[parent.ID] = struct{}{}
		chain = append(chain, parent)
		node = parent
	}
	return chain, nil
}

// Descendants returns every node below the supplied node, breadth first.
func (s *service) Descendants(ctx context.Context, nodeID uuid.UUID) ([]*TreeNode, error) {
	node, err := s.nodes.GetByID(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	siblings, err := s.nodes.ListByRegion(ctx, node.RegionID)
	if err != nil {
		return nil, err
	}

	children := map[uuid.UUID][]*TreeNode{}
	for _, candidate := range siblings {
		if candidate.ParentID == nil {
			continue
		}
		children[*candidate.ParentID] = append(children[*candidate.ParentID], candidate)
	}

	var out []*TreeNode
	queue := []uuid.UUID{node.ID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, child := range children[current] {
			out = append(out, child)
			queue = append(queue, child.ID)
		}
	}
	return out, nil
}

// CreateNode inserts a language into a region's tree, enforcing the
// one-node-per-language and single-root invariants.
func (s *service) CreateNode(ctx context.Context, req CreateNodeRequest) (*TreeNode, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lang, err := s.languages.GetByCode(ctx, req.LanguageCode)
	if err != nil {
		return nil, ErrUnknownLanguage
	}

	if existing, err := s.nodes.GetByLanguage(ctx, req.RegionID, req.LanguageCode); err == nil && existing != nil {
		return nil, ErrLanguageNodeExists
	} else if err != nil {
		var notFound *NodeNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if req.ParentID == nil {
		if root, err := s.rootOrNil(ctx, req.RegionID); err != nil {
			return nil, err
		} else if root != nil {
			return nil, ErrRootExists
		}
	} else {
		parent, err := s.nodes.GetByID(ctx, *req.ParentID)
		if err != nil {
			var notFound *NodeNotFoundError
			if errors.As(err, &notFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.RegionID != req.RegionID {
			return nil, ErrCrossRegionParent
		}
	}

	now := s.now()
	node := &TreeNode{
		ID:           s.id(),
		RegionID:     req.RegionID,
		LanguageID:   lang.ID,
		LanguageCode: lang.Code,
		ParentID:     req.ParentID,
		Visible:      req.Visible,
		Active:       req.Active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.nodes.Create(ctx, node)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("language node created",
		"region_id", req.RegionID.String(),
		"language", lang.Code,
	)
	return created, nil
}

// MoveNode reparents a node, rejecting moves that would create a second root,
// cross regions, or place the node inside its own subtree. The tree is left
// unchanged on any rejection.
func (s *service) MoveNode(ctx context.Context, req MoveNodeRequest) (*TreeNode, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	node, err := s.nodes.GetByID(ctx, req.NodeID)
	if err != nil {
		return nil, err
	}

	if req.NewParentID == nil {
		if !node.IsRoot() {
			root, err := s.rootOrNil(ctx, node.RegionID)
			if err != nil {
				return nil, err
			}
			if root != nil && root.ID != node.ID {
				return nil, ErrRootExists
			}
		}
	} else {
		if *req.NewParentID == node.ID {
			return nil, ErrNodeCycle
		}
		parent, err := s.nodes.GetByID(ctx, *req.NewParentID)
		if err != nil {
			var notFound *NodeNotFoundError
			if errors.As(err, &notFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.RegionID != node.RegionID {
			return nil, ErrCrossRegionParent
		}
		inSubtree, err := s.inSubtree(ctx, parent, node.ID)
		if err != nil {
			return nil, err
		}
		if inSubtree {
			return nil, ErrNodeCycle
		}
	}

	node.ParentID = req.NewParentID
	node.UpdatedAt = s.now()
	updated, err := s.nodes.Update(ctx, node)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("language node moved",
		"region_id", node.RegionID.String(),
		"language", node.LanguageCode,
	)
	return updated, nil
}

func (s *service) rootOrNil(ctx context.Context, regionID uuid.UUID) (*TreeNode, error) {
	nodes, err := s.nodes.ListByRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	for _, node := range nodes {
		if node.IsRoot() {
			return node, nil
		}
	}
	return nil, nil
}

// inSubtree reports whether target is candidate itself or one of its ancestors.
func (s *service) inSubtree(ctx context.Context, candidate *TreeNode, target uuid.UUID) (bool, error) {
	if candidate.ID == target {
		return true, nil
	}
	ancestors, err := s.Ancestors(ctx, candidate.ID)
	if err != nil {
		return false, err
	}
	for _, ancestor := range ancestors {
		if ancestor.ID == target {
			return true, nil
		}
	}
	return false, nil
}
