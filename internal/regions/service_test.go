package regions_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-regioncms/internal/regions"
)

func TestCreateAndGetBySlug(t *testing.T) {
	svc := regions.NewService(regions.NewMemoryRepository())

	created, err := svc.Create(context.Background(), regions.CreateRequest{
		Slug:   "Bad Kissingen",
		Name:   "Bad Kissingen",
		Status: regions.StatusActive,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Slug != "bad-kissingen" {
		t.Fatalf("slug = %q, want normalized %q", created.Slug, "bad-kissingen")
	}

	got, err := svc.GetBySlug(context.Background(), "bad-kissingen")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("got region %s, want %s", got.ID, created.ID)
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc := regions.NewService(regions.NewMemoryRepository())
	ctx := context.Background()

	if _, err := svc.Create(ctx, regions.CreateRequest{Slug: "augsburg", Name: "Augsburg", Status: regions.StatusActive}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, regions.CreateRequest{Slug: "augsburg", Name: "Other", Status: regions.StatusActive}); !errors.Is(err, regions.ErrRegionExists) {
		t.Fatalf("expected ErrRegionExists, got %v", err)
	}
}

func TestGetBySlugMissing(t *testing.T) {
	svc := regions.NewService(regions.NewMemoryRepository())

	_, err := svc.GetBySlug(context.Background(), "nowhere")
	var notFound *regions.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	svc := regions.NewService(regions.NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, regions.CreateRequest{Slug: "nurnberg", Name: "Nürnberg", Status: regions.StatusActive})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	updated, err := svc.SetStatus(ctx, created.ID, regions.StatusArchived)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != regions.StatusArchived {
		t.Fatalf("status = %s, want archived", updated.Status)
	}
	if _, err := svc.SetStatus(ctx, created.ID, regions.Status("deleted")); !errors.Is(err, regions.ErrStatusInvalid) {
		t.Fatalf("expected ErrStatusInvalid, got %v", err)
	}
}

func TestOffers(t *testing.T) {
	svc := regions.NewService(regions.NewMemoryRepository())
	ctx := context.Background()

	region, err := svc.Create(ctx, regions.CreateRequest{Slug: "augsburg", Name: "Augsburg", Status: regions.StatusActive})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.EnableOffer(ctx, region.ID, "sprungbrett", "Sprungbrett"); err != nil {
		t.Fatalf("enable offer: %v", err)
	}

	has, err := svc.HasOffer(ctx, region.ID, "sprungbrett")
	if err != nil {
		t.Fatalf("has offer: %v", err)
	}
	if !has {
		t.Fatal("expected offer to be enabled")
	}

	has, err = svc.HasOffer(ctx, region.ID, "lehrstellen")
	if err != nil {
		t.Fatalf("has missing offer: %v", err)
	}
	if has {
		t.Fatal("expected missing offer to report false")
	}
}

func TestPushNotifications(t *testing.T) {
	svc := regions.NewService(regions.NewMemoryRepository())
	ctx := context.Background()
	regionID := uuid.New()

	if _, err := svc.RecordPushNotification(ctx, regions.PushRequest{
		RegionID:       regionID,
		NotificationID: "42",
		Language:       "de",
	}); err != nil {
		t.Fatalf("record push: %v", err)
	}

	sent, err := svc.SentPushNotification(ctx, regionID, "42", "de")
	if err != nil {
		t.Fatalf("sent push: %v", err)
	}
	if !sent {
		t.Fatal("expected push to be sent in de")
	}

	sent, err = svc.SentPushNotification(ctx, regionID, "42", "en")
	if err != nil {
		t.Fatalf("sent push other language: %v", err)
	}
	if sent {
		t.Fatal("expected push to be unsent in en")
	}
}
