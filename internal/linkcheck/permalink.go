package linkcheck

import (
	"fmt"
	"strings"

	urlkit "github.com/goliatone/go-urlkit"
)

// Route names inside the frontend group.
const (
	routeEvent    = "event"
	routeLocation = "location"
)

// Permalinks builds canonical internal paths for slug-addressed content.
// Event and location routes go through the urlkit route group; page paths
// are joined from the page's ancestor slugs since their depth varies.
type Permalinks struct {
	manager *urlkit.RouteManager
}

// NewPermalinks constructs the canonical path builder.
func NewPermalinks() *Permalinks {
	return &Permalinks{
		manager: urlkit.NewRouteManager(&urlkit.Config{
			Groups: []urlkit.GroupConfig{
				{
					Name: "frontend",
					Paths: map[string]string{
						routeEvent:    "/:region/:language/events/:slug",
						routeLocation: "/:region/:language/locations/:slug",
					},
				},
			},
		}),
	}
}

// Event returns the canonical normalized path of one event translation.
func (p *Permalinks) Event(regionSlug, languageSlug, slug string) (string, error) {
	return p.build(routeEvent, regionSlug, languageSlug, slug)
}

// Location returns the canonical normalized path of one POI translation.
func (p *Permalinks) Location(regionSlug, languageSlug, slug string) (string, error) {
	return p.build(routeLocation, regionSlug, languageSlug, slug)
}

// Page returns the canonical normalized path of one page translation, with
// the ancestor slugs ordered root-first.
func (p *Permalinks) Page(regionSlug, languageSlug string, slugs []string) string {
	parts := append([]string{regionSlug, languageSlug}, slugs...)
	return strings.Join(parts, "/")
}

func (p *Permalinks) build(route, regionSlug, languageSlug, slug string) (string, error) {
	builder, err := p.safeBuilder(route)
	if err != nil {
		return "", err
	}
	builder.WithParam("region", regionSlug)
	builder.WithParam("language", languageSlug)
	builder.WithParam("slug", slug)
	built, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("linkcheck: build %s permalink: %w", route, err)
	}
	return strings.Trim(built, "/"), nil
}

// safeBuilder guards against urlkit's panic on unknown groups or routes.
func (p *Permalinks) safeBuilder(route string) (builder *urlkit.Builder, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("linkcheck: route %q not configured: %v", route, rec)
		}
	}()
	builder = p.manager.Group("frontend").Builder(route)
	return builder, err
}
