package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var ErrDefaultLanguageRequired = errors.New("regioncms config: default language is required")
var ErrStorageDriverUnknown = errors.New("regioncms config: storage driver is invalid")
var ErrStorageDSNRequired = errors.New("regioncms config: storage dsn is required for the bun driver")
var ErrLinkCheckSlugRequired = errors.New("regioncms config: link check slugs must not be empty")
var ErrLinkCheckWorkersInvalid = errors.New("regioncms config: link check worker count must be positive")
var ErrLinkCheckIntervalInvalid = errors.New("regioncms config: link check interval must be zero or positive")
var ErrLoggingProviderRequired = errors.New("regioncms config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("regioncms config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("regioncms config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("regioncms config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can extend them
// later.
type Config struct {
	Enabled         bool   `env:"REGIONCMS_ENABLED"          envDefault:"true"`
	DefaultLanguage string `env:"REGIONCMS_DEFAULT_LANGUAGE" envDefault:"en"`
	Storage         StorageConfig
	Features        Features
	LinkCheck       LinkCheckConfig
	Logging         LoggingConfig
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `env:"REGIONCMS_STORAGE_DRIVER" envDefault:"memory"`
	DSN    string `env:"REGIONCMS_STORAGE_DSN"`
}

// Features toggles module functionality.
type Features struct {
	Mirrors   bool `env:"REGIONCMS_FEATURE_MIRRORS"   envDefault:"true"`
	LinkCheck bool `env:"REGIONCMS_FEATURE_LINKCHECK" envDefault:"true"`
	Logger    bool `env:"REGIONCMS_FEATURE_LOGGER"`
}

// LinkCheckConfig captures the URL slugs of the public frontend contract and
// the background checker behaviour.
type LinkCheckConfig struct {
	ImprintSlug      string        `env:"REGIONCMS_LINKCHECK_IMPRINT_SLUG"       envDefault:"disclaimer"`
	NewsLocalSlug    string        `env:"REGIONCMS_LINKCHECK_NEWS_LOCAL_SLUG"    envDefault:"local"`
	NewsExternalSlug string        `env:"REGIONCMS_LINKCHECK_NEWS_EXTERNAL_SLUG" envDefault:"tu-news"`
	Workers          int           `env:"REGIONCMS_LINKCHECK_WORKERS"            envDefault:"4"`
	Interval         time.Duration `env:"REGIONCMS_LINKCHECK_INTERVAL"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `env:"REGIONCMS_LOG_PROVIDER" envDefault:"console"`
	Level     string   `env:"REGIONCMS_LOG_LEVEL"    envDefault:"info"`
	Format    string   `env:"REGIONCMS_LOG_FORMAT"`
	AddSource bool     `env:"REGIONCMS_LOG_ADD_SOURCE"`
	Focus     []string `env:"REGIONCMS_LOG_FOCUS"`
}

// DefaultConfig returns opinionated defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:         true,
		DefaultLanguage: "en",
		Storage: StorageConfig{
			Driver: "memory",
		},
		Features: Features{
			Mirrors:   true,
			LinkCheck: true,
		},
		LinkCheck: LinkCheckConfig{
			ImprintSlug:      "disclaimer",
			NewsLocalSlug:    "local",
			NewsExternalSlug: "tu-news",
			Workers:          4,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// FromEnv builds a Config from the defaults overlaid with REGIONCMS_*
// environment variables.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("regioncms config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLanguage) == "" {
		return ErrDefaultLanguageRequired
	}
	switch driver := strings.ToLower(strings.TrimSpace(cfg.Storage.Driver)); driver {
	case "bun":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	case "memory", "":
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, driver)
	}
	if cfg.Features.LinkCheck {
		for _, slugValue := range []string{
			cfg.LinkCheck.ImprintSlug,
			cfg.LinkCheck.NewsLocalSlug,
			cfg.LinkCheck.NewsExternalSlug,
		} {
			if strings.TrimSpace(slugValue) == "" {
				return ErrLinkCheckSlugRequired
			}
		}
		if cfg.LinkCheck.Workers < 1 {
			return ErrLinkCheckWorkersInvalid
		}
		if cfg.LinkCheck.Interval < 0 {
			return ErrLinkCheckIntervalInvalid
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
