package events

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/logging"
	"github.com/goliatone/go-regioncms/internal/translations"
	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

// Service exposes event lifecycle plus the slug lookup used by link
// validation.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Event, error)
	Get(ctx context.Context, id uuid.UUID) (*Event, error)
	Archive(ctx context.Context, id uuid.UUID) (*Event, error)
	Restore(ctx context.Context, id uuid.UUID) (*Event, error)
	// FindBySlug returns every event of the region carrying a translation
	// with the slug in the language. Multiplicity is meaningful to callers.
	FindBySlug(ctx context.Context, regionID uuid.UUID, language, slugValue string) ([]*Event, error)
}

// SlugIndex resolves slugs to content item ids.
type SlugIndex interface {
	FindItemsBySlug(ctx context.Context, kind translations.Kind, regionID uuid.UUID, language, slugValue string) ([]uuid.UUID, error)
}

// Repository abstracts event storage.
type Repository interface {
	Insert(ctx context.Context, event *Event) (*Event, error)
	Update(ctx context.Context, event *Event) (*Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
}

// CreateRequest captures a new event.
type CreateRequest struct {
	RegionID         uuid.UUID
	LocationID       *uuid.UUID
	RecurrenceRuleID *uuid.UUID
	StartAt          time.Time
	EndAt            time.Time
}

// Validate ensures the request carries its region and a sane time range.
func (req CreateRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.RegionID, validation.By(func(value any) error {
			if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
				return ErrRegionRequired
			}
			return nil
		})),
		validation.Field(&req.EndAt, validation.By(func(any) error {
			if req.EndAt.Before(req.StartAt) {
				return ErrTimeRangeInvalid
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
		s.logger = logging.ContentLogger(provider)
	}
}

type service struct {
	repo   Repository
	slugs  SlugIndex
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService constructs the events service.
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

func (s *service) Create(ctx context.Context, req CreateRequest) (*Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	now := s.now()
	event := &Event{
		ID:               s.id(),
		RegionID:         req.RegionID,
		LocationID:       req.LocationID,
		RecurrenceRuleID: req.RecurrenceRuleID,
		StartAt:          req.StartAt,
		EndAt:            req.EndAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := s.repo.Insert(ctx, event)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("event created", "event_id", created.ID.String())
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Event, error) {
	if id == uuid.Nil {
		return nil, ErrEventRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Archive(ctx context.Context, id uuid.UUID) (*Event, error) {
	return s.setArchived(ctx, id, true)
}

func (s *service) Restore(ctx context.Context, id uuid.UUID) (*Event, error) {
	return s.setArchived(ctx, id, false)
}

func (s *service) setArchived(ctx context.Context, id uuid.UUID, archived bool) (*Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Archived = archived
	event.UpdatedAt = s.now()
	return s.repo.Update(ctx, event)
}

func (s *service) FindBySlug(ctx context.Context, regionID uuid.UUID, language, slugValue string) ([]*Event, error) {
	ids, err := s.slugs.FindItemsBySlug(ctx, translations.KindEvent, regionID, language, slugValue)
	if err != nil {
		return nil, err
	}
	out := make([]*Event, 0, len(ids))
	for _, id := range ids {
		event, err := s.repo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}
