package linkcheck

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/events"
	"github.com/goliatone/go-regioncms/internal/imprint"
	"github.com/goliatone/go-regioncms/internal/languages"
	"github.com/goliatone/go-regioncms/internal/logging"
	"github.com/goliatone/go-regioncms/internal/pages"
	"github.com/goliatone/go-regioncms/internal/pois"
	"github.com/goliatone/go-regioncms/internal/regions"
	"github.com/goliatone/go-regioncms/internal/translations"
	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

// RegionProvider resolves regions and their per-region features.
type RegionProvider interface {
	GetBySlug(ctx context.Context, slug string) (*regions.Region, error)
	HasOffer(ctx context.Context, regionID uuid.UUID, offerSlug string) (bool, error)
	HasEnabledOffers(ctx context.Context, regionID uuid.UUID) (bool, error)
	SentPushNotification(ctx context.Context, regionID uuid.UUID, notificationID, language string) (bool, error)
}

// LanguageProvider resolves a region's language tree nodes.
type LanguageProvider interface {
	Resolve(ctx context.Context, regionID uuid.UUID, code string) (*languages.TreeNode, error)
	Root(ctx context.Context, regionID uuid.UUID) (*languages.TreeNode, error)
}

// EventProvider finds events by translation slug.
type EventProvider interface {
	FindBySlug(ctx context.Context, regionID uuid.UUID, language, slugValue string) ([]*events.Event, error)
}

// LocationProvider finds POIs by translation slug.
type LocationProvider interface {
	FindBySlug(ctx context.Context, regionID uuid.UUID, language, slugValue string) ([]*pois.POI, error)
}

// PageProvider finds pages by translation slug and resolves their effective
// archival state.
type PageProvider interface {
	FindBySlug(ctx context.Context, regionID uuid.UUID, language, slugValue string) ([]*pages.Page, error)
	Get(ctx context.Context, id uuid.UUID) (*pages.Page, error)
	IsArchived(ctx context.Context, id uuid.UUID) (bool, error)
}

// ImprintProvider resolves the region's imprint.
type ImprintProvider interface {
	GetByRegion(ctx context.Context, regionID uuid.UUID) (*imprint.Imprint, error)
}

// Config carries the configurable URL slugs of the wire contract.
type Config struct {
	ImprintSlug      string
	NewsLocalSlug    string
	NewsExternalSlug string
}

// DefaultConfig returns the slugs the public frontend uses.
func DefaultConfig() Config {
	return Config{
		ImprintSlug:      "disclaimer",
		NewsLocalSlug:    "local",
		NewsExternalSlug: "tu-news",
	}
}

// Validator classifies internal URLs against the live content state. One
// validation is a pure evaluation; persisting the outcome goes through
// Apply. Validations share no mutable state and can run concurrently.
type Validator struct {
	cfg        Config
	regions    RegionProvider
	languages  LanguageProvider
	events     EventProvider
	locations  LocationProvider
	pages      PageProvider
	imprints   ImprintProvider
	chains     translations.ChainLoader
	permalinks *Permalinks
	logger     interfaces.Logger
}

// ValidatorOption configures the validator at construction time.
type ValidatorOption func(*Validator)

// WithLoggerProvider attaches a logger provider to the validator.
func WithLoggerProvider(provider interfaces.LoggerProvider) ValidatorOption {
	return func(v *Validator) {
		v.logger = logging.LinkCheckLogger(provider)
	}
}

// WithConfig overrides the wire-contract slugs.
func WithConfig(cfg Config) ValidatorOption {
	return func(v *Validator) {
		if cfg.ImprintSlug != "" {
			v.cfg.ImprintSlug = cfg.ImprintSlug
		}
		if cfg.NewsLocalSlug != "" {
			v.cfg.NewsLocalSlug = cfg.NewsLocalSlug
		}
		if cfg.NewsExternalSlug != "" {
			v.cfg.NewsExternalSlug = cfg.NewsExternalSlug
		}
	}
}

// NewValidator constructs the internal link validator.
func NewValidator(
	regionProvider RegionProvider,
	languageProvider LanguageProvider,
	eventProvider EventProvider,
	locationProvider LocationProvider,
	pageProvider PageProvider,
	imprintProvider ImprintProvider,
	chains translations.ChainLoader,
	opts ...ValidatorOption,
) *Validator {
	v := &Validator{
		cfg:        DefaultConfig(),
		regions:    regionProvider,
		languages:  languageProvider,
		events:     eventProvider,
		locations:  locationProvider,
		pages:      pageProvider,
		imprints:   imprintProvider,
		chains:     chains,
		permalinks: NewPermalinks(),
		logger:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate classifies one URL. Absence of content resolves to an invalid
// classification, never an error; errors signal infrastructure failures.
func (v *Validator) Validate(ctx context.Context, u *URL) (Result, error) {
	if u == nil {
		return Result{}, errors.New("linkcheck: url required")
	}
	if u.Type != TypeInternal {
		return Result{Outcome: OutcomeSkipped}, nil
	}

	path := normalize(u.InternalURL)
	if path == "" {
		return Result{Outcome: OutcomeSkipped}, nil
	}

	parts := strings.Split(path, "/")
	regionSlug := parts[0]
	rest := parts[1:]

	region, err := v.regions.GetBySlug(ctx, regionSlug)
	if err != nil {
		var notFound *regions.NotFoundError
		if errors.As(err, &notFound) {
			return invalid(ReasonRegionInvalid), nil
		}
		return Result{}, err
	}
	if region.Status == regions.StatusArchived {
		return invalid(ReasonRegionInvalid), nil
	}
	if len(rest) == 0 {
		// The region root is always a valid link.
		return Result{Outcome: OutcomeValid}, nil
	}

	languageSlug := rest[0]
	rest = rest[1:]

	node, err := v.languages.Resolve(ctx, region.ID, languageSlug)
	if err != nil {
		var notFound *languages.NodeNotFoundError
		if errors.As(err, &notFound) {
			return invalid(ReasonLanguageInvalid), nil
		}
		return Result{}, err
	}
	if !node.Active || !node.Visible {
		return invalid(ReasonLanguageInvalid), nil
	}
	if len(rest) == 0 {
		// So is the language root.
		return Result{Outcome: OutcomeValid}, nil
	}

	req := request{
		path:         path,
		region:       region,
		regionSlug:   regionSlug,
		language:     node.LanguageCode,
		languageSlug: languageSlug,
		components:   rest,
	}

	switch rest[0] {
	case v.cfg.ImprintSlug:
		return v.checkImprint(ctx, req)
	case "events":
		return v.checkEvents(ctx, req)
	case "locations":
		return v.checkLocations(ctx, req)
	case "news":
		return v.checkNews(ctx, req)
	case "offers":
		return v.checkOffers(ctx, req)
	default:
		return v.checkPage(ctx, req)
	}
}

// request carries the already-resolved URL context through the per-type
// handlers.
type request struct {
	path         string
	region       *regions.Region
	regionSlug   string
	language     string
	languageSlug string
	components   []string
}

func (v *Validator) checkImprint(ctx context.Context, req request) (Result, error) {
	if len(req.components) != 1 {
		return invalid(ReasonPathTooDeep), nil
	}
	imp, err := v.imprints.GetByRegion(ctx, req.region.ID)
	if err != nil {
		var notFound *imprint.NotFoundError
		if errors.As(err, &notFound) {
			return invalid(ReasonImprintMissing), nil
		}
		return Result{}, err
	}
	public, err := v.publicTranslation(ctx, imp.ID, req.language)
	if err != nil {
		return Result{}, err
	}
	if public == nil {
		return invalid(ReasonImprintMissing), nil
	}
	return Result{Outcome: OutcomeValid}, nil
}

func (v *Validator) checkEvents(ctx context.Context, req request) (Result, error) {
	switch len(req.components) {
	case 1:
		// List view.
		return Result{Outcome: OutcomeValid}, nil
	case 2:
	default:
		return invalid(ReasonPathTooDeep), nil
	}
	slugValue := req.components[1]

	matches, lookupLanguage, err := findWithFallback(ctx, v, req, func(ctx context.Context, language string) ([]*events.Event, error) {
		return v.events.FindBySlug(ctx, req.region.ID, language, slugValue)
	})
	if err != nil {
		return Result{}, err
	}
	if len(matches) == 0 {
		return invalid(ReasonEventMissing), nil
	}
	if len(matches) > 1 {
		v.warnNotUnique(req, "event", slugValue, len(matches))
		return invalid(ReasonSlugNotUnique), nil
	}

	event := matches[0]
	public, err := v.publicTranslation(ctx, event.ID, lookupLanguage)
	if err != nil {
		return Result{}, err
	}
	if public == nil {
		return invalid(ReasonEventMissing), nil
	}
	canonical, err := v.permalinks.Event(req.regionSlug, req.languageSlug, public.Slug)
	if err != nil {
		return Result{}, err
	}
	if canonical != req.path {
		return invalid(ReasonPermalinkOutdated), nil
	}
	if event.Archived {
		return invalid(ReasonContentArchived), nil
	}
	return Result{Outcome: OutcomeValid}, nil
}

func (v *Validator) checkLocations(ctx context.Context, req request) (Result, error) {
	switch len(req.components) {
	case 1:
		return Result{Outcome: OutcomeValid}, nil
	case 2:
	default:
		return invalid(ReasonPathTooDeep), nil
	}
	slugValue := req.components[1]

	matches, lookupLanguage, err := findWithFallback(ctx, v, req, func(ctx context.Context, language string) ([]*pois.POI, error) {
		return v.locations.FindBySlug(ctx, req.region.ID, language, slugValue)
	})
	if err != nil {
		return Result{}, err
	}
	if len(matches) == 0 {
		return invalid(ReasonLocationMissing), nil
	}
	if len(matches) > 1 {
		v.warnNotUnique(req, "location", slugValue, len(matches))
		return invalid(ReasonSlugNotUnique), nil
	}

	location := matches[0]
	public, err := v.publicTranslation(ctx, location.ID, lookupLanguage)
	if err != nil {
		return Result{}, err
	}
	if public == nil {
		return invalid(ReasonLocationMissing), nil
	}
	canonical, err := v.permalinks.Location(req.regionSlug, req.languageSlug, public.Slug)
	if err != nil {
		return Result{}, err
	}
	if canonical != req.path {
		return invalid(ReasonPermalinkOutdated), nil
	}
	if location.Archived {
		return invalid(ReasonContentArchived), nil
	}
	return Result{Outcome: OutcomeValid}, nil
}

func (v *Validator) checkNews(ctx context.Context, req request) (Result, error) {
	if len(req.components) > 3 {
		return invalid(ReasonPathTooDeep), nil
	}
	if len(req.components) < 2 {
		return invalid(ReasonNewsCategory), nil
	}

	switch req.components[1] {
	case v.cfg.NewsLocalSlug:
		if len(req.components) == 2 {
			return Result{Outcome: OutcomeValid}, nil
		}
		// A concrete entry must match an actually-sent push message.
		sent, err := v.regions.SentPushNotification(ctx, req.region.ID, req.components[2], req.language)
		if err != nil {
			return Result{}, err
		}
		if !sent {
			return invalid(ReasonNewsNotSent), nil
		}
		return Result{Outcome: OutcomeValid}, nil
	case v.cfg.NewsExternalSlug:
		if !req.region.ExternalNewsEnabled {
			return invalid(ReasonExternalNewsOff), nil
		}
		// External entry ids are accepted without existence checking.
		return Result{Outcome: OutcomeValid}, nil
	default:
		return invalid(ReasonNewsCategory), nil
	}
}

func (v *Validator) checkOffers(ctx context.Context, req request) (Result, error) {
	switch len(req.components) {
	case 1:
		enabled, err := v.regions.HasEnabledOffers(ctx, req.region.ID)
		if err != nil {
			return Result{}, err
		}
		if !enabled {
			return invalid(ReasonNoOffersEnabled), nil
		}
		return Result{Outcome: OutcomeValid}, nil
	case 2:
		has, err := v.regions.HasOffer(ctx, req.region.ID, req.components[1])
		if err != nil {
			return Result{}, err
		}
		if !has {
			return invalid(ReasonOfferMissing), nil
		}
		return Result{Outcome: OutcomeValid}, nil
	default:
		return invalid(ReasonPathTooDeep), nil
	}
}

// checkPage is the default handler: the last path component is treated as a
// page slug and the whole path must equal the page's canonical permalink.
func (v *Validator) checkPage(ctx context.Context, req request) (Result, error) {
	slugValue := req.components[len(req.components)-1]

	matches, lookupLanguage, err := findWithFallback(ctx, v, req, func(ctx context.Context, language string) ([]*pages.Page, error) {
		return v.pages.FindBySlug(ctx, req.region.ID, language, slugValue)
	})
	if err != nil {
		return Result{}, err
	}
	if len(matches) == 0 {
		return invalid(ReasonPageMissing), nil
	}
	if len(matches) > 1 {
		v.warnNotUnique(req, "page", slugValue, len(matches))
		return invalid(ReasonSlugNotUnique), nil
	}

	page := matches[0]
	slugs, err := v.pageSlugPath(ctx, page, lookupLanguage)
	if err != nil {
		return Result{}, err
	}
	if slugs == nil {
		return invalid(ReasonPageMissing), nil
	}
	canonical := v.permalinks.Page(req.regionSlug, req.languageSlug, slugs)
	if canonical != req.path {
		return invalid(ReasonPermalinkOutdated), nil
	}

	archived, err := v.pages.IsArchived(ctx, page.ID)
	if err != nil {
		return Result{}, err
	}
	if archived {
		return invalid(ReasonContentArchived), nil
	}
	return Result{Outcome: OutcomeValid}, nil
}

// pageSlugPath collects the current public slugs from the page tree root
// down to the page. A nil result means some page on the path has no public
// translation in the language.
func (v *Validator) pageSlugPath(ctx context.Context, page *pages.Page, language string) ([]string, error) {
	var slugs []string
	seen := map[uuid.UUID]struct{}{}
	for current := page; current != nil; {
		if _, visited := seen[current.ID]; visited {
			return nil, nil
		}
		seen[current.ID] = struct{}{}

		public, err := v.publicTranslation(ctx, current.ID, language)
		if err != nil {
			return nil, err
		}
		if public == nil {
			return nil, nil
		}
		slugs = append([]string{public.Slug}, slugs...)

		if current.ParentID == nil {
			break
		}
		parent, err := v.pages.Get(ctx, *current.ParentID)
		if err != nil {
			var notFound *pages.NotFoundError
			if errors.As(err, &notFound) {
				break
			}
			return nil, err
		}
		current = parent
	}
	return slugs, nil
}

func (v *Validator) publicTranslation(ctx context.Context, itemID uuid.UUID, language string) (*translations.Revision, error) {
	chain, err := v.chains.ChainFor(ctx, itemID, language)
	if err != nil {
		return nil, err
	}
	return chain.LatestPublic(), nil
}

// warnNotUnique logs the ambiguous-slug case as a data integrity signal: a
// slug uniqueness invariant was violated upstream.
func (v *Validator) warnNotUnique(req request, kind, slugValue string, count int) {
	v.logger.Warn("slug is not unique",
		"kind", kind,
		"slug", slugValue,
		"region", req.regionSlug,
		"language", req.language,
		"matches", count,
	)
}

// findWithFallback runs the slug lookup in the requested language and, when
// nothing matches and the region allows fallback translations, retries in
// the region's default language. The lookup only ever widens for events,
// locations and pages; imprint and offers stay strict.
func findWithFallback[T any](
	ctx context.Context,
	v *Validator,
	req request,
	find func(ctx context.Context, language string) ([]T, error),
) ([]T, string, error) {
	matches, err := find(ctx, req.language)
	if err != nil {
		return nil, "", err
	}
	if len(matches) > 0 || !req.region.FallbackTranslationsEnabled {
		return matches, req.language, nil
	}

	root, err := v.languages.Root(ctx, req.region.ID)
	if err != nil {
		var notFound *languages.NodeNotFoundError
		if errors.As(err, &notFound) {
			return matches, req.language, nil
		}
		return nil, "", err
	}
	if strings.EqualFold(root.LanguageCode, req.language) {
		return matches, req.language, nil
	}

	fallback, err := find(ctx, root.LanguageCode)
	if err != nil {
		return nil, "", err
	}
	if len(fallback) == 0 {
		return matches, req.language, nil
	}
	return fallback, root.LanguageCode, nil
}

// normalize percent-decodes the raw path and trims surrounding slashes so
// "/augsburg" and "/augsburg/" compare equal.
func normalize(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		decoded = raw
	}
	return strings.Trim(strings.TrimSpace(decoded), "/")
}

func invalid(reason string) Result {
	return Result{Outcome: OutcomeInvalid, Reason: reason}
}
