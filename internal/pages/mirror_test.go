package pages_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/domain"
	"github.com/goliatone/go-regioncms/internal/pages"
	"github.com/goliatone/go-regioncms/internal/translations"
)

type mirrorFixture struct {
	composer *pages.Composer
	page     *pages.Page
	mirror   *pages.Page
	saveAt   func(t *testing.T, itemID uuid.UUID, text string, at time.Time) *translations.Revision
}

func newMirrorFixture(t *testing.T) *mirrorFixture {
	t.Helper()
	regionID := uuid.New()
	store := translations.NewMemoryStore()

	mirror := &pages.Page{ID: uuid.New(), RegionID: regionID}
	page := &pages.Page{ID: uuid.New(), RegionID: regionID, MirrorID: &mirror.ID}

	saveAt := func(t *testing.T, itemID uuid.UUID, text string, at time.Time) *translations.Revision {
		t.Helper()
		svc := translations.NewService(store,
			translations.WithClock(func() time.Time { return at }))
		rev, err := svc.Save(context.Background(), translations.SaveRequest{
			ItemID:   itemID,
			ItemKind: translations.KindPage,
			RegionID: regionID,
			Language: "de",
			Title:    "Seite",
			Slug:     "seite-" + itemID.String()[:8],
			Text:     text,
			Status:   domain.StatusPublic,
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		return rev
	}

	return &mirrorFixture{
		composer: pages.NewComposer(translations.NewService(store)),
		page:     page,
		mirror:   mirror,
		saveAt:   saveAt,
	}
}

func TestCombinedTextWithoutMirror(t *testing.T) {
	f := newMirrorFixture(t)
	f.page.MirrorID = nil
	rev := f.saveAt(t, f.page.ID, "own text", time.Now())

	got, err := f.composer.CombinedText(context.Background(), f.page, rev)
	if err != nil {
		t.Fatalf("combined text: %v", err)
	}
	if got != "own text" {
		t.Fatalf("combined text = %q, want own text unchanged", got)
	}
}

func TestCombinedTextAppendsMirroredText(t *testing.T) {
	f := newMirrorFixture(t)
	f.saveAt(t, f.mirror.ID, "mirrored text", time.Now())
	rev := f.saveAt(t, f.page.ID, "own text", time.Now())

	got, err := f.composer.CombinedText(context.Background(), f.page, rev)
	if err != nil {
		t.Fatalf("combined text: %v", err)
	}
	if !strings.HasPrefix(got, "own text") || !strings.HasSuffix(got, "mirrored text") {
		t.Fatalf("combined text = %q, want own text before mirrored text", got)
	}
}

func TestCombinedTextMirrorFirst(t *testing.T) {
	f := newMirrorFixture(t)
	f.page.MirrorFirst = true
	f.saveAt(t, f.mirror.ID, "mirrored text", time.Now())
	rev := f.saveAt(t, f.page.ID, "own text", time.Now())

	got, err := f.composer.CombinedText(context.Background(), f.page, rev)
	if err != nil {
		t.Fatalf("combined text: %v", err)
	}
	if !strings.HasPrefix(got, "mirrored text") {
		t.Fatalf("combined text = %q, want mirrored text first", got)
	}
}

func TestCombinedLastUpdatedFallsBackToMirror(t *testing.T) {
	f := newMirrorFixture(t)
	mirrorTime := time.Date(2026, time.April, 1, 8, 0, 0, 0, time.UTC)
	ownTime := time.Date(2026, time.April, 2, 8, 0, 0, 0, time.UTC)

	f.saveAt(t, f.mirror.ID, "mirrored text", mirrorTime)
	rev := f.saveAt(t, f.page.ID, "", ownTime)

	got, err := f.composer.CombinedLastUpdated(context.Background(), f.page, rev)
	if err != nil {
		t.Fatalf("combined last updated: %v", err)
	}
	if !got.Equal(mirrorTime) {
		t.Fatalf("combined last updated = %v, want mirror time %v", got, mirrorTime)
	}

	// With own text present, its own timestamp wins.
	rev2 := f.saveAt(t, f.page.ID, "now with text", ownTime)
	got, err = f.composer.CombinedLastUpdated(context.Background(), f.page, rev2)
	if err != nil {
		t.Fatalf("combined last updated: %v", err)
	}
	if !got.Equal(ownTime) {
		t.Fatalf("combined last updated = %v, want own time %v", got, ownTime)
	}
}

func TestRenderCombinedProducesHTML(t *testing.T) {
	f := newMirrorFixture(t)
	f.page.MirrorID = nil
	rev := f.saveAt(t, f.page.ID, "# Heading", time.Now())

	htmlOut, err := f.composer.RenderCombined(context.Background(), f.page, rev)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(htmlOut), "<h1") {
		t.Fatalf("rendered HTML = %q, want an h1 element", htmlOut)
	}
}
