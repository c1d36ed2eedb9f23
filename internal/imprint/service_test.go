package imprint_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/imprint"
)

func TestEnsureIsIdempotent(t *testing.T) {
	svc := imprint.NewService(imprint.NewMemoryRepository())
	ctx := context.Background()
	regionID := uuid.New()

	first, err := svc.Ensure(ctx, regionID)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	second, err := svc.Ensure(ctx, regionID)
	if err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if first.ID != second.ID {
		t.Fatal("ensure should return the existing imprint")
	}
}

func TestArchiveRestore(t *testing.T) {
	svc := imprint.NewService(imprint.NewMemoryRepository())
	ctx := context.Background()
	regionID := uuid.New()

	if _, err := svc.Ensure(ctx, regionID); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	archived, err := svc.Archive(ctx, regionID)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if !archived.Archived {
		t.Fatal("imprint should be archived")
	}
	restored, err := svc.Restore(ctx, regionID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Archived {
		t.Fatal("imprint should be restored")
	}
}
