package translations

import (
	"context"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/domain"
	"github.com/goliatone/go-regioncms/internal/logging"
	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

// Service exposes revision chain use cases shared by every content kind.
type Service interface {
	Save(ctx context.Context, req SaveRequest) (*Revision, error)
	ChainFor(ctx context.Context, itemID uuid.UUID, language string) (*Chain, error)
	FindItemsBySlug(ctx context.Context, kind Kind, regionID uuid.UUID, language, slugValue string) ([]uuid.UUID, error)
}

// Store abstracts storage for revision rows.
type Store interface {
	ListRevisions(ctx context.Context, itemID uuid.UUID, language string) ([]*Revision, error)
	InsertRevision(ctx context.Context, rev *Revision) (*Revision, error)
	UpdateRevision(ctx context.Context, rev *Revision) (*Revision, error)
	FindItemsBySlug(ctx context.Context, kind Kind, regionID uuid.UUID, language, slugValue string) ([]uuid.UUID, error)
}

// SaveRequest captures one save of a translation. The service decides whether
// the save mutates the newest revision row or appends a new version.
type SaveRequest struct {
	ItemID                 uuid.UUID
	ItemKind               Kind
	RegionID               uuid.UUID
	Language               string
	Title                  string
	Slug                   string
	Text                   string
	Status                 domain.Status
	MinorEdit              bool
	CurrentlyInTranslation bool
	CreatorID              *uuid.UUID
}

// Validate ensures the request is complete and the status is allowed for the
// content kind. Imprints skip the review stage.
func (req SaveRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.ItemID, validation.By(func(value any) error {
			if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
				return ErrItemRequired
			}
			return nil
		})),
		validation.Field(&req.ItemKind, validation.By(func(value any) error {
			if kind, ok := value.(Kind); !ok || !kind.Valid() {
				return ErrKindInvalid
			}
			return nil
		})),
		validation.Field(&req.Language, validation.Required.Error(ErrLanguageRequired.Error())),
		validation.Field(&req.Title, validation.Required.Error(ErrTitleRequired.Error())),
		validation.Field(&req.Status, validation.By(func(value any) error {
			status, ok := value.(domain.Status)
			if !ok || !status.Valid() {
				return ErrStatusInvalid
			}
			if status == domain.StatusReview && req.ItemKind == KindImprint {
				return ErrReviewNotSupported
			}
			return nil
		})),
	)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp revisions.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithIDGenerator overrides revision identifier generation.
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
		s.logger = logging.TranslationsLogger(provider)
	}
}

type service struct {
	store  Store
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
	locks  sync.Map // item|language -> *sync.Mutex
}

// NewService constructs the revision chain service.
func NewService(store Store, opts ...ServiceOption) Service {
	s := &service{
		store:  store,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save applies the hybrid append/mutate rule: when none of the significant
// fields (title, slug, text) changed the newest row is updated in place;
// otherwise a new row with the next version number is appended and the prior
// row is left untouched. Saves to the same pair are serialized.
func (s *service) Save(ctx context.Context, req SaveRequest) (*Revision, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	language := strings.ToLower(strings.TrimSpace(req.Language))
	slugValue, err := s.normalizeSlug(req)
	if err != nil {
		return nil, err
	}

	mu := s.lockFor(req.ItemID, language)
	mu.Lock()
	defer mu.Unlock()

	revs, err := s.store.ListRevisions(ctx, req.ItemID, language)
	if err != nil {
		return nil, err
	}
	chain := NewChain(revs)
	latest := chain.Latest()
	now := s.now()

	if latest != nil && !significantChange(latest, req.Title, slugValue, req.Text) {
		latest.Status = req.Status
		latest.MinorEdit = req.MinorEdit
		latest.CurrentlyInTranslation = req.CurrentlyInTranslation
		latest.LastUpdated = now
		updated, err := s.store.UpdateRevision(ctx, latest)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("revision updated in place",
			"item_id", req.ItemID.String(),
			"language", language,
			"version", updated.Version,
		)
		return updated, nil
	}

	version := 0
	if latest != nil {
		version = latest.Version + 1
	}

	rev := &Revision{
		ID:                     s.id(),
		ItemID:                 req.ItemID,
		ItemKind:               req.ItemKind,
		RegionID:               req.RegionID,
		Language:               language,
		Version:                version,
		Status:                 req.Status,
		Title:                  strings.TrimSpace(req.Title),
		Slug:                   slugValue,
		Text:                   req.Text,
		MinorEdit:              req.MinorEdit,
		CurrentlyInTranslation: req.CurrentlyInTranslation,
		CreatorID:              req.CreatorID,
		CreatedAt:              now,
		LastUpdated:            now,
	}

	created, err := s.store.InsertRevision(ctx, rev)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("revision appended",
		"item_id", req.ItemID.String(),
		"language", language,
		"version", created.Version,
	)
	return created, nil
}

// ChainFor loads the ordered revision history for one pair.
func (s *service) ChainFor(ctx context.Context, itemID uuid.UUID, language string) (*Chain, error) {
	if itemID == uuid.Nil {
		return nil, ErrItemRequired
	}
	revs, err := s.store.ListRevisions(ctx, itemID, strings.ToLower(strings.TrimSpace(language)))
	if err != nil {
		return nil, err
	}
	return NewChain(revs), nil
}

// FindItemsBySlug returns the distinct content items of one kind carrying a
// revision with the supplied slug in the region and language.
func (s *service) FindItemsBySlug(ctx context.Context, kind Kind, regionID uuid.UUID, language, slugValue string) ([]uuid.UUID, error) {
	if !kind.Valid() {
		return nil, ErrKindInvalid
	}
	return s.store.FindItemsBySlug(ctx, kind, regionID,
		strings.ToLower(strings.TrimSpace(language)), strings.TrimSpace(slugValue))
}

func (s *service) normalizeSlug(req SaveRequest) (string, error) {
	raw := strings.TrimSpace(req.Slug)
	if raw == "" {
		raw = req.Title
	}
	normalized, err := slug.Normalize(raw)
	if err != nil || normalized == "" {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}

func (s *service) lockFor(itemID uuid.UUID, language string) *sync.Mutex {
	key := itemID.String() + "|" + language
	actual, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// significantChange reports whether the save touches a field that warrants a
// new version row. Status and minor-edit flips never do.
func significantChange(latest *Revision, title, slugValue, text string) bool {
	if latest == nil {
		return true
	}
	return latest.Title != strings.TrimSpace(title) ||
		latest.Slug != slugValue ||
		latest.Text != text
}
