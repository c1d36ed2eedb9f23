package pages

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/logging"
	"github.com/goliatone/go-regioncms/internal/translations"
	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

// Service exposes page tree manipulation with archival propagation.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	Move(ctx context.Context, req MoveRequest) (*Page, error)
	Archive(ctx context.Context, id uuid.UUID) (*Page, error)
	// Restore clears the explicit flag. The boolean reports whether the page
	// remains effectively archived through an ancestor.
	Restore(ctx context.Context, id uuid.UUID) (*Page, bool, error)
	IsArchived(ctx context.Context, id uuid.UUID) (bool, error)
	Partition(ctx context.Context, regionID uuid.UUID) (archived, active []*Page, err error)
	SetMirror(ctx context.Context, id uuid.UUID, mirrorID *uuid.UUID, mirrorFirst bool) (*Page, error)
	// FindBySlug returns every page of the region carrying a translation
	// with the slug in the language. Multiplicity is meaningful to callers.
	FindBySlug(ctx context.Context, regionID uuid.UUID, language, slugValue string) ([]*Page, error)
}

// SlugIndex resolves slugs to content item ids.
type SlugIndex interface {
	FindItemsBySlug(ctx context.Context, kind translations.Kind, regionID uuid.UUID, language, slugValue string) ([]uuid.UUID, error)
}

// Repository abstracts page storage.
type Repository interface {
	Insert(ctx context.Context, page *Page) (*Page, error)
	Update(ctx context.Context, page *Page) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Page, error)
	ListByRegion(ctx context.Context, regionID uuid.UUID) ([]*Page, error)
}

// CreateRequest captures a new page.
type CreateRequest struct {
	RegionID uuid.UUID
	ParentID *uuid.UUID
}

// Validate ensures the request carries its region.
func (req CreateRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.RegionID, validation.By(func(value any) error {
			if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
				return ErrRegionRequired
			}
			return nil
		})),
	)
}

// MoveRequest reparents a page. A nil parent makes the page a root.
type MoveRequest struct {
	PageID   uuid.UUID
	ParentID *uuid.UUID
}

// Validate ensures the request identifies a page.
func (req MoveRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.PageID, validation.By(func(value any) error {
			if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
				return ErrPageRequired
			}
			return nil
		})),
	)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used for timestamps.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides identifier generation.
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
		s.logger = logging.PagesLogger(provider)
	}
}

type service struct {
	repo   Repository
	slugs  SlugIndex
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService constructs the page tree service.
func NewService(repo Repository, slugs SlugIndex, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		slugs:  slugs,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Page, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, ErrParentNotFound
		}
		if parent.RegionID != req.RegionID {
			return nil, ErrCrossRegionParent
		}
	}

	now := s.now()
	page := &Page{
		ID:        s.id(),
		RegionID:  req.RegionID,
		ParentID:  req.ParentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.repo.Insert(ctx, page)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("page created", "page_id", created.ID.String(), "region_id", req.RegionID.String())
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Page, error) {
	if id == uuid.Nil {
		return nil, ErrPageRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Move(ctx context.Context, req MoveRequest) (*Page, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	page, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, ErrParentNotFound
		}
		if parent.RegionID != page.RegionID {
			return nil, ErrCrossRegionParent
		}
		inside, err := s.inSubtree(ctx, page.ID, parent)
		if err != nil {
			return nil, err
		}
		if inside {
			return nil, ErrParentCycle
		}
	}

	page.ParentID = req.ParentID
	page.UpdatedAt = s.now()
	updated, err := s.repo.Update(ctx, page)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("page moved", "page_id", page.ID.String())
	return updated, nil
}

func (s *service) Archive(ctx context.Context, id uuid.UUID) (*Page, error) {
	page, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	page.Archived = true
	page.UpdatedAt = s.now()
	updated, err := s.repo.Update(ctx, page)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page archived", "page_id", id.String())
	return updated, nil
}

func (s *service) Restore(ctx context.Context, id uuid.UUID) (*Page, bool, error) {
	page, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	page.Archived = false
	page.UpdatedAt = s.now()
	updated, err := s.repo.Update(ctx, page)
	if err != nil {
		return nil, false, err
	}

	stillArchived, err := s.hasArchivedAncestor(ctx, updated)
	if err != nil {
		return nil, false, err
	}
	if stillArchived {
		s.logger.Info("page restored but remains archived through an ancestor",
			"page_id", id.String())
	} else {
		s.logger.Info("page restored", "page_id", id.String())
	}
	return updated, stillArchived, nil
}

// IsArchived resolves the effective archival state by walking parent
// pointers through the repository.
func (s *service) IsArchived(ctx context.Context, id uuid.UUID) (bool, error) {
	page, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if page.Archived {
		return true, nil
	}
	return s.hasArchivedAncestor(ctx, page)
}

func (s *service) Partition(ctx context.Context, regionID uuid.UUID) ([]*Page, []*Page, error) {
	if regionID == uuid.Nil {
		return nil, nil, ErrRegionRequired
	}
	set, err := s.repo.ListByRegion(ctx, regionID)
	if err != nil {
		return nil, nil, err
	}
	archived, active := PartitionArchived(set)
	return archived, active, nil
}

func (s *service) SetMirror(ctx context.Context, id uuid.UUID, mirrorID *uuid.UUID, mirrorFirst bool) (*Page, error) {
	page, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if mirrorID != nil {
		if *mirrorID == page.ID {
			return nil, ErrSelfMirror
		}
		if _, err := s.repo.GetByID(ctx, *mirrorID); err != nil {
			return nil, ErrMirrorNotFound
		}
	}
	page.MirrorID = mirrorID
	page.MirrorFirst = mirrorFirst
	page.UpdatedAt = s.now()
	return s.repo.Update(ctx, page)
}

func (s *service) FindBySlug(ctx context.Context, regionID uuid.UUID, language, slugValue string) ([]*Page, error) {
	ids, err := s.slugs.FindItemsBySlug(ctx, translations.KindPage, regionID, language, slugValue)
	if err != nil {
		return nil, err
	}
	out := make([]*Page, 0, len(ids))
	for _, id := range ids {
		page, err := s.repo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, page)
	}
	return out, nil
}

func (s *service) hasArchivedAncestor(ctx context.Context, page *Page) (bool, error) {
	seen := map[uuid.UUID]struct{}{page.ID: {}}
	for current := page; current.ParentID != nil; {
		parent, err := s.repo.GetByID(ctx, *current.ParentID)
		if err != nil {
			return false, nil
		}
		if _, visited := seen[parent.ID]; visited {
			return false, nil
		}
		seen[parent.ID] = struct{}{}
		if parent.Archived {
			return true, nil
		}
		current = parent
	}
	return false, nil
}

// inSubtree reports whether candidate sits inside the subtree rooted at
// rootID, following parent pointers upward from the candidate.
func (s *service) inSubtree(ctx context.Context, rootID uuid.UUID, candidate *Page) (bool, error) {
	seen := map[uuid.UUID]struct{}{}
	for current := candidate; current != nil; {
		if current.ID == rootID {
			return true, nil
		}
		if _, visited := seen[current.ID]; visited {
			return false, nil
		}
		seen[current.ID] = struct{}{}
		if current.ParentID == nil {
			return false, nil
		}
		parent, err := s.repo.GetByID(ctx, *current.ParentID)
		if err != nil {
			return false, nil
		}
		current = parent
	}
	return false, nil
}
