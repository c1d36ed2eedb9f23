package di_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-regioncms/internal/di"
	"github.com/goliatone/go-regioncms/internal/runtimeconfig"
)

func TestNewContainerBuildsServiceGraph(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	if container.Languages() == nil {
		t.Fatal("language service missing")
	}
	if container.Translations() == nil {
		t.Fatal("translation service missing")
	}
	if container.Freshness() == nil {
		t.Fatal("freshness evaluator missing")
	}
	if container.Regions() == nil {
		t.Fatal("region service missing")
	}
	if container.Pages() == nil {
		t.Fatal("page service missing")
	}
	if container.Events() == nil {
		t.Fatal("event service missing")
	}
	if container.Locations() == nil {
		t.Fatal("poi service missing")
	}
	if container.Imprints() == nil {
		t.Fatal("imprint service missing")
	}
	if container.Mirrors() == nil {
		t.Fatal("mirror composer should be on by default")
	}
	if container.LinkValidator() == nil {
		t.Fatal("link validator should be on by default")
	}
	if container.URLSink() == nil {
		t.Fatal("url sink missing")
	}
}

func TestNewContainerHonorsFeatureFlags(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Mirrors = false
	cfg.Features.LinkCheck = false

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	if container.Mirrors() != nil {
		t.Fatal("mirror composer should be disabled")
	}
	if container.LinkValidator() != nil {
		t.Fatal("link validator should be disabled")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLanguage = ""

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrDefaultLanguageRequired) {
		t.Fatalf("expected ErrDefaultLanguageRequired, got %v", err)
	}
}
