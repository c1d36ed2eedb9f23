package di

import (
	"strings"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-regioncms/internal/events"
	"github.com/goliatone/go-regioncms/internal/imprint"
	"github.com/goliatone/go-regioncms/internal/languages"
	"github.com/goliatone/go-regioncms/internal/linkcheck"
	"github.com/goliatone/go-regioncms/internal/logging/gologger"
	"github.com/goliatone/go-regioncms/internal/pages"
	"github.com/goliatone/go-regioncms/internal/pois"
	"github.com/goliatone/go-regioncms/internal/regions"
	"github.com/goliatone/go-regioncms/internal/runtimeconfig"
	"github.com/goliatone/go-regioncms/internal/translations"
	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

// Container wires repositories and services for the module. Repositories
// default to the in-memory implementations; WithBunDB swaps in the bun-backed
// ones.
type Container struct {
	config         runtimeconfig.Config
	bunDB          *bun.DB
	loggerProvider interfaces.LoggerProvider

	nodeRepo         languages.NodeRepository
	languageRepo     languages.LanguageRepository
	translationStore translations.Store
	regionRepo       regions.Repository
	pageRepo         pages.Repository
	eventRepo        events.Repository
	poiRepo          pois.Repository
	imprintRepo      imprint.Repository
	urlSink          linkcheck.Sink

	languageService    languages.Service
	translationService translations.Service
	regionService      regions.Service
	pageService        pages.Service
	eventService       events.Service
	poiService         pois.Service
	imprintService     imprint.Service
	evaluator          *translations.Evaluator
	composer           *pages.Composer
	validator          *linkcheck.Validator
}

// Option mutates the container before services are constructed.
type Option func(*Container)

// WithBunDB binds the container to a bun database handle. All repositories
// switch to their bun-backed implementations.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithLoggerProvider overrides the logger provider derived from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithURLSink overrides the destination link check results are written to.
func WithURLSink(sink linkcheck.Sink) Option {
	return func(c *Container) {
		c.urlSink = sink
	}
}

// WithLanguageService overrides the default language service binding.
func WithLanguageService(svc languages.Service) Option {
	return func(c *Container) {
		c.languageService = svc
	}
}

// WithTranslationService overrides the default translation service binding.
func WithTranslationService(svc translations.Service) Option {
	return func(c *Container) {
		c.translationService = svc
	}
}

// WithRegionService overrides the default region service binding.
func WithRegionService(svc regions.Service) Option {
	return func(c *Container) {
		c.regionService = svc
	}
}

// NewContainer validates the configuration and builds the service graph.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		config:           cfg,
		nodeRepo:         languages.NewMemoryNodeRepository(),
		languageRepo:     languages.NewMemoryLanguageRepository(),
		translationStore: translations.NewMemoryStore(),
		regionRepo:       regions.NewMemoryRepository(),
		pageRepo:         pages.NewMemoryRepository(),
		eventRepo:        events.NewMemoryRepository(),
		poiRepo:          pois.NewMemoryRepository(),
		imprintRepo:      imprint.NewMemoryRepository(),
		urlSink:          linkcheck.NewMemoryURLStore(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.bunDB != nil {
		c.nodeRepo = languages.NewBunNodeRepository(c.bunDB)
		c.languageRepo = languages.NewBunLanguageRepository(c.bunDB)
		c.translationStore = translations.NewBunStore(c.bunDB)
		c.regionRepo = regions.NewBunRepository(c.bunDB)
		c.pageRepo = pages.NewBunRepository(c.bunDB)
		c.eventRepo = events.NewBunRepository(c.bunDB)
		c.poiRepo = pois.NewBunRepository(c.bunDB)
		c.imprintRepo = imprint.NewBunRepository(c.bunDB)
		c.urlSink = linkcheck.NewBunURLStore(c.bunDB)
	}

	if c.loggerProvider == nil && cfg.Features.Logger {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.translationService == nil {
		c.translationService = translations.NewService(c.translationStore,
			translationOptions(c.loggerProvider)...)
	}
	if c.languageService == nil {
		c.languageService = languages.NewService(c.nodeRepo, c.languageRepo,
			languageOptions(c.loggerProvider)...)
	}
	if c.regionService == nil {
		c.regionService = regions.NewService(c.regionRepo,
			regionOptions(c.loggerProvider)...)
	}
	c.pageService = pages.NewService(c.pageRepo, c.translationService,
		pageOptions(c.loggerProvider)...)
	c.eventService = events.NewService(c.eventRepo, c.translationService,
		eventOptions(c.loggerProvider)...)
	c.poiService = pois.NewService(c.poiRepo, c.translationService,
		poiOptions(c.loggerProvider)...)
	c.imprintService = imprint.NewService(c.imprintRepo,
		imprintOptions(c.loggerProvider)...)

	c.evaluator = translations.NewEvaluator(c.languageService, c.translationService,
		evaluatorOptions(c.loggerProvider)...)

	if cfg.Features.Mirrors {
		c.composer = pages.NewComposer(c.translationService)
	}
	if cfg.Features.LinkCheck {
		c.validator = linkcheck.NewValidator(
			c.regionService,
			c.languageService,
			c.eventService,
			c.poiService,
			c.pageService,
			c.imprintService,
			c.translationService,
			validatorOptions(cfg, c.loggerProvider)...,
		)
	}

	return c, nil
}

// Config returns the configuration the container was built with.
func (c *Container) Config() runtimeconfig.Config {
	return c.config
}

// LoggerProvider returns the resolved logger provider, nil when logging is
// disabled and nothing was injected.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Languages returns the language tree service.
func (c *Container) Languages() languages.Service {
	return c.languageService
}

// Translations returns the revision chain service.
func (c *Container) Translations() translations.Service {
	return c.translationService
}

// Freshness returns the translation freshness evaluator.
func (c *Container) Freshness() *translations.Evaluator {
	return c.evaluator
}

// Regions returns the region service.
func (c *Container) Regions() regions.Service {
	return c.regionService
}

// Pages returns the page service.
func (c *Container) Pages() pages.Service {
	return c.pageService
}

// Mirrors returns the mirrored-content composer, nil when the feature is off.
func (c *Container) Mirrors() *pages.Composer {
	return c.composer
}

// Events returns the event service.
func (c *Container) Events() events.Service {
	return c.eventService
}

// Locations returns the POI service.
func (c *Container) Locations() pois.Service {
	return c.poiService
}

// Imprints returns the imprint service.
func (c *Container) Imprints() imprint.Service {
	return c.imprintService
}

// LinkValidator returns the internal URL validator, nil when the feature is
// off.
func (c *Container) LinkValidator() *linkcheck.Validator {
	return c.validator
}

// URLSink returns the store link check outcomes are applied to.
func (c *Container) URLSink() linkcheck.Sink {
	return c.urlSink
}

// buildLoggerProvider maps the logging section onto the go-logger adapter.
// The console provider is go-logger with console output.
func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	format := cfg.Format
	if strings.EqualFold(strings.TrimSpace(cfg.Provider), "console") && format == "" {
		format = "console"
	}
	return gologger.NewProvider(gologger.Config{
		Level:     cfg.Level,
		Format:    format,
		AddSource: cfg.AddSource,
		Focus:     cfg.Focus,
	})
}

func translationOptions(provider interfaces.LoggerProvider) []translations.ServiceOption {
	if provider == nil {
		return nil
	}
	return []translations.ServiceOption{translations.WithLoggerProvider(provider)}
}

func languageOptions(provider interfaces.LoggerProvider) []languages.ServiceOption {
	if provider == nil {
		return nil
	}
	return []languages.ServiceOption{languages.WithLoggerProvider(provider)}
}

func regionOptions(provider interfaces.LoggerProvider) []regions.ServiceOption {
	if provider == nil {
		return nil
	}
	return []regions.ServiceOption{regions.WithLoggerProvider(provider)}
}

func pageOptions(provider interfaces.LoggerProvider) []pages.ServiceOption {
	if provider == nil {
		return nil
	}
	return []pages.ServiceOption{pages.WithLoggerProvider(provider)}
}

func eventOptions(provider interfaces.LoggerProvider) []events.ServiceOption {
	if provider == nil {
		return nil
	}
	return []events.ServiceOption{events.WithLoggerProvider(provider)}
}

func poiOptions(provider interfaces.LoggerProvider) []pois.ServiceOption {
	if provider == nil {
		return nil
	}
	return []pois.ServiceOption{pois.WithLoggerProvider(provider)}
}

func imprintOptions(provider interfaces.LoggerProvider) []imprint.ServiceOption {
	if provider == nil {
		return nil
	}
	return []imprint.ServiceOption{imprint.WithLoggerProvider(provider)}
}

func evaluatorOptions(provider interfaces.LoggerProvider) []translations.EvaluatorOption {
	if provider == nil {
		return nil
	}
	return []translations.EvaluatorOption{translations.WithEvaluatorLoggerProvider(provider)}
}

func validatorOptions(cfg runtimeconfig.Config, provider interfaces.LoggerProvider) []linkcheck.ValidatorOption {
	opts := []linkcheck.ValidatorOption{
		linkcheck.WithConfig(linkcheck.Config{
			ImprintSlug:      cfg.LinkCheck.ImprintSlug,
			NewsLocalSlug:    cfg.LinkCheck.NewsLocalSlug,
			NewsExternalSlug: cfg.LinkCheck.NewsExternalSlug,
		}),
	}
	if provider != nil {
		opts = append(opts, linkcheck.WithLoggerProvider(provider))
	}
	return opts
}
