package languages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/languages"
)

func newTreeFixture(t *testing.T) (languages.Service, uuid.UUID, map[string]*languages.TreeNode) {
	t.Helper()

	nodeStore := languages.NewMemoryNodeRepository()
	langStore := languages.NewMemoryLanguageRepository()
	for _, code := range []string{"en", "de", "ar", "fr"} {
		langStore.Put(&languages.Language{ID: uuid.New(), Code: code, Display: code})
	}

	svc := languages.NewService(nodeStore, langStore)
	regionID := uuid.New()

	nodes := map[string]*languages.TreeNode{}
	root, err := svc.CreateNode(context.Background(), languages.CreateNodeRequest{
		RegionID:     regionID,
		LanguageCode: "en",
		Visible:      true,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	nodes["en"] = root

	de, err := svc.CreateNode(context.Background(), languages.CreateNodeRequest{
		RegionID:     regionID,
		LanguageCode: "de",
		ParentID:     &root.ID,
		Visible:      true,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("create de: %v", err)
	}
	nodes["de"] = de

	ar, err := svc.CreateNode(context.Background(), languages.CreateNodeRequest{
		RegionID:     regionID,
		LanguageCode: "ar",
		ParentID:     &de.ID,
		Visible:      true,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("create ar: %v", err)
	}
	nodes["ar"] = ar

	return svc, regionID, nodes
}

func TestCreateNodeRejectsDuplicateLanguage(t *testing.T) {
	svc, regionID, nodes := newTreeFixture(t)

	_, err := svc.CreateNode(context.Background(), languages.CreateNodeRequest{
		RegionID:     regionID,
		LanguageCode: "de",
		ParentID:     &nodes["en"].ID,
	})
	if !errors.Is(err, languages.ErrLanguageNodeExists) {
		t.Fatalf("expected ErrLanguageNodeExists, got %v", err)
	}
}

func TestCreateNodeRejectsSecondRoot(t *testing.T) {
	svc, regionID, _ := newTreeFixture(t)

	_, err := svc.CreateNode(context.Background(), languages.CreateNodeRequest{
		RegionID:     regionID,
		LanguageCode: "fr",
	})
	if !errors.Is(err, languages.ErrRootExists) {
		t.Fatalf("expected ErrRootExists, got %v", err)
	}
}

func TestCreateNodeRejectsCrossRegionParent(t *testing.T) {
	svc, _, nodes := newTreeFixture(t)

	_, err := svc.CreateNode(context.Background(), languages.CreateNodeRequest{
		RegionID:     uuid.New(),
		LanguageCode: "fr",
		ParentID:     &nodes["en"].ID,
	})
	if !errors.Is(err, languages.ErrCrossRegionParent) {
		t.Fatalf("expected ErrCrossRegionParent, got %v", err)
	}
}

func TestMoveNodeRejectsOwnSubtree(t *testing.T) {
	svc, _, nodes := newTreeFixture(t)

	_, err := svc.MoveNode(context.Background(), languages.MoveNodeRequest{
		NodeID:      nodes["de"].ID,
		NewParentID: &nodes["ar"].ID,
	})
	if !errors.Is(err, languages.ErrNodeCycle) {
		t.Fatalf("expected ErrNodeCycle, got %v", err)
	}

	// Rejected moves leave the tree unchanged.
	src, has, err := svc.SourceLanguageOf(context.Background(), nodes["de"].RegionID, "de")
	if err != nil {
		t.Fatalf("source of de: %v", err)
	}
	if !has || src != "en" {
		t.Fatalf("expected de source en, got %q (%v)", src, has)
	}
}

func TestMoveNodeReparents(t *testing.T) {
	svc, regionID, nodes := newTreeFixture(t)

	if _, err := svc.MoveNode(context.Background(), languages.MoveNodeRequest{
		NodeID:      nodes["ar"].ID,
		NewParentID: &nodes["en"].ID,
	}); err != nil {
		t.Fatalf("move ar under en: %v", err)
	}

	src, has, err := svc.SourceLanguageOf(context.Background(), regionID, "ar")
	if err != nil {
		t.Fatalf("source of ar: %v", err)
	}
	if !has || src != "en" {
		t.Fatalf("expected ar source en, got %q (%v)", src, has)
	}
}

func TestSourceLanguageOfRoot(t *testing.T) {
	svc, regionID, _ := newTreeFixture(t)

	src, has, err := svc.SourceLanguageOf(context.Background(), regionID, "en")
	if err != nil {
		t.Fatalf("source of en: %v", err)
	}
	if has || src != "" {
		t.Fatalf("expected root to have no source, got %q (%v)", src, has)
	}
}

func TestSourceLanguageOfUnknownLanguage(t *testing.T) {
	svc, regionID, _ := newTreeFixture(t)

	_, has, err := svc.SourceLanguageOf(context.Background(), regionID, "pt")
	if err != nil {
		t.Fatalf("source of pt: %v", err)
	}
	if has {
		t.Fatal("expected unknown language to have no source")
	}
}

func TestAncestorsAndDescendants(t *testing.T) {
	svc, _, nodes := newTreeFixture(t)

	ancestors, err := svc.Ancestors(context.Background(), nodes["ar"].ID)
	if err != nil {
		t.Fatalf("ancestors: %v", err)
	}
	if len(ancestors) != 2 || ancestors[0].LanguageCode != "de" || ancestors[1].LanguageCode != "en" {
		t.Fatalf("unexpected ancestor chain: %+v", ancestors)
	}

	descendants, err := svc.Descendants(context.Background(), nodes["en"].ID)
	if err != nil {
		t.Fatalf("descendants: %v", err)
	}
	if len(descendants) != 2 {
		t.Fatalf("expected 2 descendants, got %d", len(descendants))
	}
}
