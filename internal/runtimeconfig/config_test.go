package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-regioncms/internal/runtimeconfig"
)

func TestConfigValidate_DefaultsAreValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresDefaultLanguage(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.DefaultLanguage = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrDefaultLanguageRequired) {
		t.Fatalf("expected ErrDefaultLanguageRequired, got %v", err)
	}
}

func TestConfigValidate_BunDriverRequiresDSN(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = "bun"
	cfg.Storage.DSN = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}

	cfg.Storage.DSN = "file::memory:?cache=shared"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RejectsUnknownStorageDriver(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Storage.Driver = "etcd"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestConfigValidate_LinkCheckSlugsMustNotBeEmpty(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.LinkCheck.NewsLocalSlug = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLinkCheckSlugRequired) {
		t.Fatalf("expected ErrLinkCheckSlugRequired, got %v", err)
	}

	// The slugs stop mattering when the feature is off.
	cfg.Features.LinkCheck = false
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_LinkCheckWorkersMustBePositive(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.LinkCheck.Workers = 0

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLinkCheckWorkersInvalid) {
		t.Fatalf("expected ErrLinkCheckWorkersInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("REGIONCMS_DEFAULT_LANGUAGE", "de")
	t.Setenv("REGIONCMS_LINKCHECK_WORKERS", "8")

	cfg, err := runtimeconfig.FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() returned unexpected error: %v", err)
	}
	if cfg.DefaultLanguage != "de" {
		t.Fatalf("default language = %q, want de", cfg.DefaultLanguage)
	}
	if cfg.LinkCheck.Workers != 8 {
		t.Fatalf("workers = %d, want 8", cfg.LinkCheck.Workers)
	}
}
