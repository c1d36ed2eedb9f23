package regions_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-regioncms/internal/regions"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:regions_test?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, model := range []any{
		(*regions.Region)(nil),
		(*regions.Offer)(nil),
		(*regions.PushNotification)(nil),
	} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

func TestBunRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := regions.NewService(regions.NewBunRepository(newTestDB(t)))

	created, err := svc.Create(ctx, regions.CreateRequest{
		Slug:   "augsburg",
		Name:   "Augsburg",
		Status: regions.StatusActive,
	})
	if err != nil {
		t.Fatalf("create region: %v", err)
	}

	fetched, err := svc.GetBySlug(ctx, "augsburg")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if fetched.ID != created.ID || fetched.Name != "Augsburg" {
		t.Fatalf("unexpected region: %+v", fetched)
	}

	if _, err := svc.SetStatus(ctx, created.ID, regions.StatusHidden); err != nil {
		t.Fatalf("set status: %v", err)
	}
	fetched, err = svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Status != regions.StatusHidden {
		t.Fatalf("status = %s, want hidden", fetched.Status)
	}

	if _, err := svc.EnableOffer(ctx, created.ID, "sprungbrett", "Sprungbrett"); err != nil {
		t.Fatalf("enable offer: %v", err)
	}
	has, err := svc.HasOffer(ctx, created.ID, "sprungbrett")
	if err != nil {
		t.Fatalf("has offer: %v", err)
	}
	if !has {
		t.Fatal("offer should be enabled")
	}

	if _, err := svc.RecordPushNotification(ctx, regions.PushRequest{
		RegionID:       created.ID,
		NotificationID: "7",
		Language:       "de",
	}); err != nil {
		t.Fatalf("record push: %v", err)
	}
	sent, err := svc.SentPushNotification(ctx, created.ID, "7", "de")
	if err != nil {
		t.Fatalf("sent push: %v", err)
	}
	if !sent {
		t.Fatal("push should count as sent")
	}
}

func TestBunRepositoryMapsMissingRows(t *testing.T) {
	ctx := context.Background()
	svc := regions.NewService(regions.NewBunRepository(newTestDB(t)))

	_, err := svc.GetBySlug(ctx, "nowhere")
	var notFound *regions.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
