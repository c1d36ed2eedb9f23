package pages

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-regioncms/internal/translations"
)

// Composer splices a mirrored page's public text into a page's own
// translations. Composition happens at read time; stored revisions never
// contain mirrored text.
type Composer struct {
	chains translations.ChainLoader
	engine goldmark.Markdown
}

// NewComposer constructs a composer reading mirrored text through the
// supplied chain loader.
func NewComposer(chains translations.ChainLoader) *Composer {
	return &Composer{
		chains: chains,
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// CombinedText returns the translation's text with the mirrored page's
// public text spliced in. Without a mirror reference, or when the mirrored
// translation has no text, the text is returned unchanged. The page's
// mirror-first flag orders the two parts.
func (c *Composer) CombinedText(ctx context.Context, page *Page, rev *translations.Revision) (string, error) {
	if page == nil {
		return "", ErrPageRequired
	}
	if rev == nil {
		return "", translations.ErrItemRequired
	}

	mirrored, err := c.mirroredPublic(ctx, page, rev.Language)
	if err != nil {
		return "", err
	}
	if mirrored == nil || mirrored.Text == "" {
		return rev.Text, nil
	}
	if page.MirrorFirst {
		return mirrored.Text + "\n" + rev.Text, nil
	}
	return rev.Text + "\n" + mirrored.Text, nil
}

// CombinedLastUpdated returns the mirrored translation's timestamp when the
// translation's own text is empty and the mirrored text is not; otherwise
// the translation's own timestamp.
func (c *Composer) CombinedLastUpdated(ctx context.Context, page *Page, rev *translations.Revision) (time.Time, error) {
	if page == nil {
		return time.Time{}, ErrPageRequired
	}
	if rev == nil {
		return time.Time{}, translations.ErrItemRequired
	}

	mirrored, err := c.mirroredPublic(ctx, page, rev.Language)
	if err != nil {
		return time.Time{}, err
	}
	if rev.Text == "" && mirrored != nil && mirrored.Text != "" {
		return mirrored.LastUpdated, nil
	}
	return rev.LastUpdated, nil
}

// RenderCombined renders the combined markdown text to HTML.
func (c *Composer) RenderCombined(ctx context.Context, page *Page, rev *translations.Revision) ([]byte, error) {
	text, err := c.CombinedText(ctx, page, rev)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.engine.Convert([]byte(text), &buf); err != nil {
		return nil, fmt.Errorf("pages: render combined text: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Composer) mirroredPublic(ctx context.Context, page *Page, language string) (*translations.Revision, error) {
	if page.MirrorID == nil {
		return nil, nil
	}
	chain, err := c.chains.ChainFor(ctx, *page.MirrorID, language)
	if err != nil {
		return nil, err
	}
	return chain.LatestPublic(), nil
}
