package translations_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/domain"
	"github.com/goliatone/go-regioncms/internal/translations"
)

func revisionFixture(version int, status domain.Status, minor bool, updated time.Time) *translations.Revision {
	return &translations.Revision{
		ID:          uuid.New(),
		ItemID:      uuid.New(),
		ItemKind:    translations.KindPage,
		Language:    "en",
		Version:     version,
		Status:      status,
		Title:       "Title",
		Slug:        "title",
		MinorEdit:   minor,
		LastUpdated: updated,
	}
}

func TestChainViews(t *testing.T) {
	now := time.Unix(1000, 0)
	revs := []*translations.Revision{
		revisionFixture(2, domain.StatusPublic, true, now.Add(2*time.Hour)),
		revisionFixture(0, domain.StatusPublic, false, now),
		revisionFixture(1, domain.StatusDraft, false, now.Add(time.Hour)),
	}

	chain := translations.NewChain(revs)

	if got := chain.Latest().Version; got != 2 {
		t.Fatalf("latest version = %d, want 2", got)
	}
	if got := chain.LatestPublic().Version; got != 2 {
		t.Fatalf("latest public version = %d, want 2", got)
	}
	if got := chain.LatestMajorPublic().Version; got != 0 {
		t.Fatalf("latest major public version = %d, want 0", got)
	}
	if got := chain.Previous().Version; got != 1 {
		t.Fatalf("previous version = %d, want 1", got)
	}
}

func TestChainEmpty(t *testing.T) {
	chain := translations.NewChain(nil)

	if chain.Len() != 0 {
		t.Fatalf("expected empty chain, got %d revisions", chain.Len())
	}
	if chain.Latest() != nil || chain.LatestPublic() != nil || chain.LatestMajorPublic() != nil || chain.Previous() != nil {
		t.Fatal("expected all views to be nil on an empty chain")
	}
}

func TestChainSingleRevisionHasNoPrevious(t *testing.T) {
	chain := translations.NewChain([]*translations.Revision{
		revisionFixture(0, domain.StatusDraft, false, time.Unix(0, 0)),
	})
	if chain.Previous() != nil {
		t.Fatal("expected no previous revision")
	}
}
