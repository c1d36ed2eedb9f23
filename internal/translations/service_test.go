package translations_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/domain"
	"github.com/goliatone/go-regioncms/internal/translations"
)

func newSaveFixture(t *testing.T) (translations.Service, *translations.MemoryStore, translations.SaveRequest) {
	t.Helper()

	store := translations.NewMemoryStore()
	clock := time.Unix(1_700_000_000, 0)
	svc := translations.NewService(store, translations.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	req := translations.SaveRequest{
		ItemID:   uuid.New(),
		ItemKind: translations.KindEvent,
		RegionID: uuid.New(),
		Language: "de",
		Title:    "Stadtfest",
		Text:     "Jedes Jahr im Sommer.",
		Status:   domain.StatusPublic,
	}
	return svc, store, req
}

func TestSaveStartsAtVersionZero(t *testing.T) {
	svc, _, req := newSaveFixture(t)

	rev, err := svc.Save(context.Background(), req)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if rev.Version != 0 {
		t.Fatalf("version = %d, want 0", rev.Version)
	}
	if rev.Slug != "stadtfest" {
		t.Fatalf("slug = %q, want %q", rev.Slug, "stadtfest")
	}
}

func TestSaveStatusOnlyChangeUpdatesInPlace(t *testing.T) {
	svc, _, req := newSaveFixture(t)

	req.Status = domain.StatusDraft
	first, err := svc.Save(context.Background(), req)
	if err != nil {
		t.Fatalf("save draft: %v", err)
	}

	req.Status = domain.StatusPublic
	second, err := svc.Save(context.Background(), req)
	if err != nil {
		t.Fatalf("save public: %v", err)
	}

	if second.Version != first.Version {
		t.Fatalf("status change created version %d, want %d", second.Version, first.Version)
	}
	if second.ID != first.ID {
		t.Fatal("status change replaced the revision row")
	}

	chain, err := svc.ChainFor(context.Background(), req.ItemID, "de")
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if chain.Len() != 1 {
		t.Fatalf("chain length = %d, want 1", chain.Len())
	}
	if chain.Latest().Status != domain.StatusPublic {
		t.Fatalf("status = %q, want public", chain.Latest().Status)
	}
}

func TestSaveTitleChangeAppendsAndPreservesPriorRow(t *testing.T) {
	svc, _, req := newSaveFixture(t)

	first, err := svc.Save(context.Background(), req)
	if err != nil {
		t.Fatalf("save v0: %v", err)
	}
	firstCopy := *first

	req.Title = "Stadtfest 2026"
	req.Slug = "stadtfest"
	second, err := svc.Save(context.Background(), req)
	if err != nil {
		t.Fatalf("save v1: %v", err)
	}

	if second.Version != 1 {
		t.Fatalf("version = %d, want 1", second.Version)
	}

	chain, err := svc.ChainFor(context.Background(), req.ItemID, "de")
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if chain.Len() != 2 {
		t.Fatalf("chain length = %d, want 2", chain.Len())
	}

	prior := chain.Previous()
	if prior.ID != firstCopy.ID || prior.Title != firstCopy.Title || !prior.LastUpdated.Equal(firstCopy.LastUpdated) {
		t.Fatalf("prior row changed: got %+v, want %+v", prior, firstCopy)
	}
}

func TestSaveKeepsVersionsGapless(t *testing.T) {
	svc, _, req := newSaveFixture(t)

	titles := []string{"A", "B", "B", "C", "C", "D"}
	for _, title := range titles {
		req.Title = title
		req.Slug = "fixed-slug"
		if _, err := svc.Save(context.Background(), req); err != nil {
			t.Fatalf("save %q: %v", title, err)
		}
	}

	chain, err := svc.ChainFor(context.Background(), req.ItemID, "de")
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	revs := chain.Revisions()
	// A, B, C, D are significant; repeats update in place.
	if len(revs) != 4 {
		t.Fatalf("chain length = %d, want 4", len(revs))
	}
	for i, rev := range revs {
		if rev.Version != i {
			t.Fatalf("version at index %d = %d", i, rev.Version)
		}
	}
}

func TestSaveRejectsReviewForImprint(t *testing.T) {
	svc, _, req := newSaveFixture(t)

	req.ItemKind = translations.KindImprint
	req.Status = domain.StatusReview
	if _, err := svc.Save(context.Background(), req); err == nil {
		t.Fatal("expected review status to be rejected for imprint")
	}

	req.Status = domain.StatusPublic
	if _, err := svc.Save(context.Background(), req); err != nil {
		t.Fatalf("public imprint save: %v", err)
	}
}

func TestFindItemsBySlug(t *testing.T) {
	svc, _, req := newSaveFixture(t)

	if _, err := svc.Save(context.Background(), req); err != nil {
		t.Fatalf("save: %v", err)
	}

	other := req
	other.ItemID = uuid.New()
	if _, err := svc.Save(context.Background(), other); err != nil {
		t.Fatalf("save duplicate slug: %v", err)
	}

	ids, err := svc.FindItemsBySlug(context.Background(), translations.KindEvent, req.RegionID, "de", "stadtfest")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(ids))
	}

	ids, err = svc.FindItemsBySlug(context.Background(), translations.KindEvent, req.RegionID, "de", "missing")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no matches, got %d", len(ids))
	}
}
