package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/domain"
	"github.com/goliatone/go-regioncms/internal/events"
	"github.com/goliatone/go-regioncms/internal/translations"
)

func TestCreateRejectsInvertedTimeRange(t *testing.T) {
	svc := events.NewService(events.NewMemoryRepository(), translations.NewService(translations.NewMemoryStore()))
	start := time.Now()

	_, err := svc.Create(context.Background(), events.CreateRequest{
		RegionID: uuid.New(),
		StartAt:  start,
		EndAt:    start.Add(-time.Hour),
	})
	if !errors.Is(err, events.ErrTimeRangeInvalid) {
		t.Fatalf("expected ErrTimeRangeInvalid, got %v", err)
	}
}

func TestArchiveAndRestoreAreFlat(t *testing.T) {
	svc := events.NewService(events.NewMemoryRepository(), translations.NewService(translations.NewMemoryStore()))
	ctx := context.Background()
	start := time.Now()

	event, err := svc.Create(ctx, events.CreateRequest{RegionID: uuid.New(), StartAt: start, EndAt: start.Add(time.Hour)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	archived, err := svc.Archive(ctx, event.ID)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if !archived.Archived {
		t.Fatal("event should be archived")
	}

	restored, err := svc.Restore(ctx, event.ID)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Archived {
		t.Fatal("event should be restored")
	}
}

func TestFindBySlugReturnsAllMatches(t *testing.T) {
	store := translations.NewMemoryStore()
	trans := translations.NewService(store)
	svc := events.NewService(events.NewMemoryRepository(), trans)
	ctx := context.Background()
	regionID := uuid.New()
	start := time.Now()

	for i := 0; i < 2; i++ {
		event, err := svc.Create(ctx, events.CreateRequest{RegionID: regionID, StartAt: start, EndAt: start.Add(time.Hour)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := trans.Save(ctx, translations.SaveRequest{
			ItemID:   event.ID,
			ItemKind: translations.KindEvent,
			RegionID: regionID,
			Language: "de",
			Title:    "Stadtfest",
			Slug:     "stadtfest",
			Text:     "Programm",
			Status:   domain.StatusPublic,
		}); err != nil {
			t.Fatalf("save translation: %v", err)
		}
	}

	matches, err := svc.FindBySlug(ctx, regionID, "de", "stadtfest")
	if err != nil {
		t.Fatalf("find by slug: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("found %d events, want 2 (duplicate slugs are surfaced, not collapsed)", len(matches))
	}

	none, err := svc.FindBySlug(ctx, regionID, "de", "unbekannt")
	if err != nil {
		t.Fatalf("find missing slug: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("found %d events for a missing slug, want 0", len(none))
	}
}
