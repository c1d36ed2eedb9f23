package translations

import (
	"context"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/logging"
	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

// Freshness classifies one translation relative to its source language.
type Freshness string

const (
	FreshnessMissing       Freshness = "missing"
	FreshnessInTranslation Freshness = "in-translation"
	FreshnessOutdated      Freshness = "outdated"
	FreshnessUpToDate      Freshness = "up-to-date"
)

// SourceResolver reports the source language of a language within a region.
// The boolean is false for the region's root language.
type SourceResolver interface {
	SourceLanguageOf(ctx context.Context, regionID uuid.UUID, code string) (string, bool, error)
}

// ChainLoader loads revision chains per (item, language) pair.
type ChainLoader interface {
	ChainFor(ctx context.Context, itemID uuid.UUID, language string) (*Chain, error)
}

// EvaluatorOption configures the evaluator at construction time.
type EvaluatorOption func(*Evaluator)

// WithEvaluatorLoggerProvider attaches a logger provider to the evaluator.
func WithEvaluatorLoggerProvider(provider interfaces.LoggerProvider) EvaluatorOption {
	return func(e *Evaluator) {
		e.logger = logging.TranslationsLogger(provider)
	}
}

// Evaluator derives translation freshness by walking the revision chain up
// the region's language tree. Results are computed on demand and never
// cached.
type Evaluator struct {
	sources SourceResolver
	chains  ChainLoader
	logger  interfaces.Logger
}

// NewEvaluator constructs a freshness evaluator.
func NewEvaluator(sources SourceResolver, chains ChainLoader, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		sources: sources,
		chains:  chains,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate classifies the item's translation in the supplied language.
//
// A translation flagged currently-in-translation is never outdated. The
// region's root language is always authoritative. A missing source
// translation, or a missing major public revision on either side, means
// there is nothing to be behind. Staleness propagates transitively: a
// translation is outdated whenever any ancestor in its source chain is.
func (e *Evaluator) Evaluate(ctx context.Context, item ContentItem, language string) (Freshness, error) {
	if item == nil {
		return "", ErrItemRequired
	}
	if language == "" {
		return "", ErrLanguageRequired
	}

	chain, err := e.chains.ChainFor(ctx, item.ItemID(), language)
	if err != nil {
		return "", err
	}
	if chain.Len() == 0 {
		return FreshnessMissing, nil
	}
	if chain.Latest().CurrentlyInTranslation {
		return FreshnessInTranslation, nil
	}

	stale, err := e.outdated(ctx, item, language, map[string]struct{}{})
	if err != nil {
		return "", err
	}
	if stale {
		return FreshnessOutdated, nil
	}
	return FreshnessUpToDate, nil
}

// Outdated reports whether the translation is stale relative to its source
// chain. Missing translations are not outdated.
func (e *Evaluator) Outdated(ctx context.Context, item ContentItem, language string) (bool, error) {
	freshness, err := e.Evaluate(ctx, item, language)
	if err != nil {
		return false, err
	}
	return freshness == FreshnessOutdated, nil
}

// UpToDate reports whether the translation exists, is not being worked on,
// and is not stale.
func (e *Evaluator) UpToDate(ctx context.Context, item ContentItem, language string) (bool, error) {
	freshness, err := e.Evaluate(ctx, item, language)
	if err != nil {
		return false, err
	}
	return freshness == FreshnessUpToDate, nil
}

// Coverage classifies the item's translation per requested language,
// re-running the per-language evaluation for each entry.
func (e *Evaluator) Coverage(ctx context.Context, item ContentItem, languageCodes []string) (map[string]Freshness, error) {
	out := make(map[string]Freshness, len(languageCodes))
	for _, code := range languageCodes {
		freshness, err := e.Evaluate(ctx, item, code)
		if err != nil {
			return nil, err
		}
		out[code] = freshness
	}
	return out, nil
}

func (e *Evaluator) outdated(ctx context.Context, item ContentItem, language string, visited map[string]struct{}) (bool, error) {
	// Guards against a corrupted parent chain.
	if _, ok := visited[language]; ok {
		return false, nil
	}
	visited[language] = struct{}{}

	chain, err := e.chains.ChainFor(ctx, item.ItemID(), language)
	if err != nil {
		return false, err
	}
	if chain.Len() == 0 {
		return false, nil
	}
	if chain.Latest().CurrentlyInTranslation {
		return false, nil
	}

	sourceLanguage, hasSource, err := e.sources.SourceLanguageOf(ctx, item.ItemRegion(), language)
	if err != nil {
		return false, err
	}
	if !hasSource {
		return false, nil
	}

	sourceChain, err := e.chains.ChainFor(ctx, item.ItemID(), sourceLanguage)
	if err != nil {
		return false, err
	}
	if sourceChain.Len() == 0 {
		return false, nil
	}

	sourceStale, err := e.outdated(ctx, item, sourceLanguage, visited)
	if err != nil {
		return false, err
	}
	if sourceStale {
		return true, nil
	}

	major := chain.LatestMajorPublic()
	sourceMajor := sourceChain.LatestMajorPublic()
	if major == nil || sourceMajor == nil {
		return false, nil
	}
	return major.LastUpdated.Before(sourceMajor.LastUpdated), nil
}
