package regioncms

import (
	"github.com/goliatone/go-regioncms/internal/di"
	"github.com/goliatone/go-regioncms/internal/events"
	"github.com/goliatone/go-regioncms/internal/imprint"
	"github.com/goliatone/go-regioncms/internal/languages"
	"github.com/goliatone/go-regioncms/internal/linkcheck"
	"github.com/goliatone/go-regioncms/internal/pages"
	"github.com/goliatone/go-regioncms/internal/pois"
	"github.com/goliatone/go-regioncms/internal/regions"
	"github.com/goliatone/go-regioncms/internal/translations"
)

// LanguageService exports the language tree service contract.
type LanguageService = languages.Service

// TranslationService exports the revision chain service contract.
type TranslationService = translations.Service

// FreshnessEvaluator exports the translation freshness evaluator.
type FreshnessEvaluator = translations.Evaluator

// RegionService exports the region service contract.
type RegionService = regions.Service

// PageService exports the page service contract.
type PageService = pages.Service

// MirrorComposer exports the mirrored-content composer.
type MirrorComposer = pages.Composer

// EventService exports the event service contract.
type EventService = events.Service

// LocationService exports the POI service contract.
type LocationService = pois.Service

// ImprintService exports the imprint service contract.
type ImprintService = imprint.Service

// LinkValidator exports the internal URL validator.
type LinkValidator = linkcheck.Validator

// Commonly consumed value types.
type (
	Language     = languages.Language
	LanguageNode = languages.TreeNode
	Revision     = translations.Revision
	Chain        = translations.Chain
	Freshness    = translations.Freshness
	Region       = regions.Region
	Offer        = regions.Offer
	Page         = pages.Page
	Event        = events.Event
	POI          = pois.POI
	Imprint      = imprint.Imprint
	URL          = linkcheck.URL
	LinkResult   = linkcheck.Result
)

// Module is the top level runtime façade.
type Module struct {
	container *di.Container
}

// New constructs the module using the provided configuration and optional DI
// overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Languages returns the configured language tree service.
func (m *Module) Languages() LanguageService {
	return m.container.Languages()
}

// Translations returns the configured revision chain service.
func (m *Module) Translations() TranslationService {
	return m.container.Translations()
}

// Freshness returns the translation freshness evaluator.
func (m *Module) Freshness() *FreshnessEvaluator {
	return m.container.Freshness()
}

// Regions returns the configured region service.
func (m *Module) Regions() RegionService {
	return m.container.Regions()
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	return m.container.Pages()
}

// Mirrors returns the mirrored-content composer, nil when the feature is
// disabled.
func (m *Module) Mirrors() *MirrorComposer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Mirrors()
}

// Events returns the configured event service.
func (m *Module) Events() EventService {
	return m.container.Events()
}

// Locations returns the configured POI service.
func (m *Module) Locations() LocationService {
	return m.container.Locations()
}

// Imprints returns the configured imprint service.
func (m *Module) Imprints() ImprintService {
	return m.container.Imprints()
}

// LinkValidator returns the internal URL validator, nil when the feature is
// disabled.
func (m *Module) LinkValidator() *LinkValidator {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LinkValidator()
}

// URLSink returns the store link check outcomes are applied to.
func (m *Module) URLSink() linkcheck.Sink {
	return m.container.URLSink()
}
