package pages_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/pages"
	"github.com/goliatone/go-regioncms/internal/translations"
)

type treeFixture struct {
	svc        pages.Service
	regionID   uuid.UUID
	root       *pages.Page
	child      *pages.Page
	grandchild *pages.Page
}

func newTreeFixture(t *testing.T) *treeFixture {
	t.Helper()
	svc := pages.NewService(pages.NewMemoryRepository(), translations.NewService(translations.NewMemoryStore()))
	ctx := context.Background()
	regionID := uuid.New()

	root, err := svc.Create(ctx, pages.CreateRequest{RegionID: regionID})
	if err != nil {
		t.Fatalf("create root: %v", err)
	}
	child, err := svc.Create(ctx, pages.CreateRequest{RegionID: regionID, ParentID: &root.ID})
	if err != nil {
		t.Fatalf("create child: %v", err)
	}
	grandchild, err := svc.Create(ctx, pages.CreateRequest{RegionID: regionID, ParentID: &child.ID})
	if err != nil {
		t.Fatalf("create grandchild: %v", err)
	}
	return &treeFixture{svc: svc, regionID: regionID, root: root, child: child, grandchild: grandchild}
}

func TestArchiveCascadesThroughService(t *testing.T) {
	f := newTreeFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Archive(ctx, f.child.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	archived, err := f.svc.IsArchived(ctx, f.grandchild.ID)
	if err != nil {
		t.Fatalf("is archived: %v", err)
	}
	if !archived {
		t.Fatal("grandchild should be archived through its parent")
	}

	archived, err = f.svc.IsArchived(ctx, f.root.ID)
	if err != nil {
		t.Fatalf("is archived root: %v", err)
	}
	if archived {
		t.Fatal("root should not be archived")
	}
}

func TestRestoreReportsRemainingArchival(t *testing.T) {
	f := newTreeFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Archive(ctx, f.root.ID); err != nil {
		t.Fatalf("archive root: %v", err)
	}
	if _, err := f.svc.Archive(ctx, f.child.ID); err != nil {
		t.Fatalf("archive child: %v", err)
	}

	// The restore succeeds but the archived root still covers the child.
	restored, stillArchived, err := f.svc.Restore(ctx, f.child.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Archived {
		t.Fatal("explicit flag should be cleared")
	}
	if !stillArchived {
		t.Fatal("child should remain effectively archived through the root")
	}

	// Restoring the root frees the whole subtree.
	if _, stillArchived, err = f.svc.Restore(ctx, f.root.ID); err != nil || stillArchived {
		t.Fatalf("restore root: err=%v stillArchived=%v", err, stillArchived)
	}
	archived, err := f.svc.IsArchived(ctx, f.child.ID)
	if err != nil {
		t.Fatalf("is archived: %v", err)
	}
	if archived {
		t.Fatal("child should no longer be archived")
	}
}

func TestPartition(t *testing.T) {
	f := newTreeFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Archive(ctx, f.child.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	archived, active, err := f.svc.Partition(ctx, f.regionID)
	if err != nil {
		t.Fatalf("partition: %v", err)
	}
	if len(archived) != 2 || len(active) != 1 {
		t.Fatalf("partition = %d archived / %d active, want 2/1", len(archived), len(active))
	}
}

func TestMoveRejectsOwnSubtree(t *testing.T) {
	f := newTreeFixture(t)
	ctx := context.Background()

	_, err := f.svc.Move(ctx, pages.MoveRequest{PageID: f.child.ID, ParentID: &f.grandchild.ID})
	if !errors.Is(err, pages.ErrParentCycle) {
		t.Fatalf("expected ErrParentCycle, got %v", err)
	}

	// The tree is unchanged.
	got, err := f.svc.Get(ctx, f.child.ID)
	if err != nil {
		t.Fatalf("get child: %v", err)
	}
	if got.ParentID == nil || *got.ParentID != f.root.ID {
		t.Fatal("child parent should be unchanged")
	}
}

func TestMoveRejectsCrossRegionParent(t *testing.T) {
	f := newTreeFixture(t)
	ctx := context.Background()

	other, err := f.svc.Create(ctx, pages.CreateRequest{RegionID: uuid.New()})
	if err != nil {
		t.Fatalf("create other region page: %v", err)
	}
	if _, err := f.svc.Move(ctx, pages.MoveRequest{PageID: f.child.ID, ParentID: &other.ID}); !errors.Is(err, pages.ErrCrossRegionParent) {
		t.Fatalf("expected ErrCrossRegionParent, got %v", err)
	}
}

func TestMoveToRoot(t *testing.T) {
	f := newTreeFixture(t)
	ctx := context.Background()

	moved, err := f.svc.Move(ctx, pages.MoveRequest{PageID: f.grandchild.ID, ParentID: nil})
	if err != nil {
		t.Fatalf("move to root: %v", err)
	}
	if !moved.IsRoot() {
		t.Fatal("page should be a root after the move")
	}
}

func TestSetMirrorRejectsSelf(t *testing.T) {
	f := newTreeFixture(t)
	ctx := context.Background()

	if _, err := f.svc.SetMirror(ctx, f.root.ID, &f.root.ID, false); !errors.Is(err, pages.ErrSelfMirror) {
		t.Fatalf("expected ErrSelfMirror, got %v", err)
	}
}
