package regions

import (
	"context"
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/logging"
	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

// Service exposes region lifecycle and per-region feature lookups.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Region, error)
	Get(ctx context.Context, id uuid.UUID) (*Region, error)
	GetBySlug(ctx context.Context, slugValue string) (*Region, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status) (*Region, error)
	EnableOffer(ctx context.Context, regionID uuid.UUID, offerSlug, name string) (*Offer, error)
	HasOffer(ctx context.Context, regionID uuid.UUID, offerSlug string) (bool, error)
	HasEnabledOffers(ctx context.Context, regionID uuid.UUID) (bool, error)
	RecordPushNotification(ctx context.Context, req PushRequest) (*PushNotification, error)
	SentPushNotification(ctx context.Context, regionID uuid.UUID, notificationID, language string) (bool, error)
}

// Repository abstracts storage for regions and their related rows.
type Repository interface {
	Insert(ctx context.Context, region *Region) (*Region, error)
	Update(ctx context.Context, region *Region) (*Region, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Region, error)
	GetBySlug(ctx context.Context, slugValue string) (*Region, error)
	InsertOffer(ctx context.Context, offer *Offer) (*Offer, error)
	GetOffer(ctx context.Context, regionID uuid.UUID, offerSlug string) (*Offer, error)
	ListOffers(ctx context.Context, regionID uuid.UUID) ([]*Offer, error)
	InsertPush(ctx context.Context, push *PushNotification) (*PushNotification, error)
	GetPush(ctx context.Context, regionID uuid.UUID, notificationID, language string) (*PushNotification, error)
}

// CreateRequest captures a new region.
type CreateRequest struct {
	Slug                        string
	Name                        string
	Status                      Status
	ExternalNewsEnabled         bool
	FallbackTranslationsEnabled bool
}

// Validate ensures the request is complete.
func (req CreateRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Slug, validation.Required.Error(ErrSlugRequired.Error())),
		validation.Field(&req.Name, validation.Required.Error(ErrNameRequired.Error())),
		validation.Field(&req.Status, validation.By(func(value any) error {
			if status, ok := value.(Status); !ok || !status.Valid() {
				return ErrStatusInvalid
			}
			return nil
		})),
	)
}

// PushRequest records a sent push message for one (region, language) pair.
type PushRequest struct {
	RegionID       uuid.UUID
	NotificationID string
	Language       string
	SentAt         *time.Time
}

// Validate ensures the push record carries its identifiers.
func (req PushRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.RegionID, validation.By(func(value any) error {
			if id, ok := value.(uuid.UUID); !ok || id == uuid.Nil {
				return ErrRegionRequired
			}
			return nil
		})),
		validation.Field(&req.NotificationID, validation.Required),
		validation.Field(&req.Language, validation.Required),
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
		s.logger = logging.RegionsLogger(provider)
	}
}

type service struct {
	repo   Repository
	now    func() time.Time
	id     func() uuid.UUID
	logger interfaces.Logger
}

// NewService constructs the regions service.
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

func (s *service) Create(ctx context.Context, req CreateRequest) (*Region, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slugValue, err := slug.Normalize(req.Slug)
	if err != nil || slugValue == "" {
		return nil, ErrSlugRequired
	}
	if existing, err := s.repo.GetBySlug(ctx, slugValue); err == nil && existing != nil {
		return nil, ErrRegionExists
	}

	now := s.now()
	region := &Region{
		ID:                          s.id(),
		Slug:                        slugValue,
		Name:                        strings.TrimSpace(req.Name),
		Status:                      req.Status,
		ExternalNewsEnabled:         req.ExternalNewsEnabled,
		FallbackTranslationsEnabled: req.FallbackTranslationsEnabled,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
	created, err := s.repo.Insert(ctx, region)
	if err != nil {
		return nil, err
	}
	s.logger.Info("region created", "region_id", created.ID.String(), "slug", created.Slug)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Region, error) {
	if id == uuid.Nil {
		return nil, ErrRegionRequired
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slugValue string) (*Region, error) {
	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" {
		return nil, ErrSlugRequired
	}
	return s.repo.GetBySlug(ctx, slugValue)
}

func (s *service) SetStatus(ctx context.Context, id uuid.UUID, status Status) (*Region, error) {
	if !status.Valid() {
		return nil, ErrStatusInvalid
	}
	region, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	region.Status = status
	region.UpdatedAt = s.now()
	updated, err := s.repo.Update(ctx, region)
	if err != nil {
		return nil, err
	}
	s.logger.Info("region status changed",
		"region_id", id.String(),
		"status", string(status),
	)
	return updated, nil
}

func (s *service) EnableOffer(ctx context.Context, regionID uuid.UUID, offerSlug, name string) (*Offer, error) {
	if regionID == uuid.Nil {
		return nil, ErrRegionRequired
	}
	slugValue, err := slug.Normalize(offerSlug)
	if err != nil || slugValue == "" {
		return nil, ErrSlugRequired
	}
	if existing, err := s.repo.GetOffer(ctx, regionID, slugValue); err == nil && existing != nil {
		return existing, nil
	}
	return s.repo.InsertOffer(ctx, &Offer{
		ID:       s.id(),
		RegionID: regionID,
		Slug:     slugValue,
		Name:     strings.TrimSpace(name),
		Enabled:  true,
	})
}

// HasOffer reports whether the region has the offer enabled. Absence is a
// classification, not an error.
func (s *service) HasOffer(ctx context.Context, regionID uuid.UUID, offerSlug string) (bool, error) {
	offer, err := s.repo.GetOffer(ctx, regionID, strings.TrimSpace(offerSlug))
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return offer != nil && offer.Enabled, nil
}

// HasEnabledOffers reports whether the region has any offer switched on.
func (s *service) HasEnabledOffers(ctx context.Context, regionID uuid.UUID) (bool, error) {
	offers, err := s.repo.ListOffers(ctx, regionID)
	if err != nil {
		return false, err
	}
	for _, offer := range offers {
		if offer.Enabled {
			return true, nil
		}
	}
	return false, nil
}

func (s *service) RecordPushNotification(ctx context.Context, req PushRequest) (*PushNotification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	sentAt := req.SentAt
	if sentAt == nil {
		now := s.now()
		sentAt = &now
	}
	return s.repo.InsertPush(ctx, &PushNotification{
		ID:             s.id(),
		NotificationID: strings.TrimSpace(req.NotificationID),
		RegionID:       req.RegionID,
		Language:       strings.ToLower(strings.TrimSpace(req.Language)),
		Sent:           true,
		SentAt:         sentAt,
	})
}

// SentPushNotification reports whether the push message was sent in the
// language. The link validator consults this for news URLs.
func (s *service) SentPushNotification(ctx context.Context, regionID uuid.UUID, notificationID, language string) (bool, error) {
	push, err := s.repo.GetPush(ctx, regionID,
		strings.TrimSpace(notificationID), strings.ToLower(strings.TrimSpace(language)))
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return push != nil && push.Sent, nil
}
