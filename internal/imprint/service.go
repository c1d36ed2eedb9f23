package imprint

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/logging"
	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

// Service exposes the per-region imprint.
type Service interface {
	Ensure(ctx context.Context, regionID uuid.UUID) (*Imprint, error)
	GetByRegion(ctx context.Context, regionID uuid.UUID) (*Imprint, error)
	Archive(ctx context.Context, regionID uuid.UUID) (*Imprint, error)
	Restore(ctx context.Context, regionID uuid.UUID) (*Imprint, error)
}

// Repository abstracts imprint storage.
type Repository interface {
	Insert(ctx context.Context, imp *Imprint) (*Imprint, error)
	Update(ctx context.Context, imp *Imprint) (*Imprint, error)
	GetByRegion(ctx context.Context, regionID uuid.UUID) (*Imprint, error)
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
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService constructs the imprint service.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ensure returns the region's imprint, creating it when absent.
func (s *service) Ensure(ctx context.Context, regionID uuid.UUID) (*Imprint, error) {
	if regionID == uuid.Nil {
		return nil, ErrRegionRequired
	}

	existing, err := s.repo.GetByRegion(ctx, regionID)
	if err == nil {
		return existing, nil
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	now := s.now()
	created, err := s.repo.Insert(ctx, &Imprint{
		ID:        s.id(),
		RegionID:  regionID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("imprint created", "region_id", regionID.String())
	return created, nil
}

func (s *service) GetByRegion(ctx context.Context, regionID uuid.UUID) (*Imprint, error) {
	if regionID == uuid.Nil {
		return nil, ErrRegionRequired
	}
	return s.repo.GetByRegion(ctx, regionID)
}

func (s *service) Archive(ctx context.Context, regionID uuid.UUID) (*Imprint, error) {
	return s.setArchived(ctx, regionID, true)
}

func (s *service) Restore(ctx context.Context, regionID uuid.UUID) (*Imprint, error) {
	return s.setArchived(ctx, regionID, false)
}

func (s *service) setArchived(ctx context.Context, regionID uuid.UUID, archived bool) (*Imprint, error) {
	imp, err := s.GetByRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	imp.Archived = archived
	imp.UpdatedAt = s.now()
	return s.repo.Update(ctx, imp)
}
