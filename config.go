package regioncms

import "github.com/goliatone/go-regioncms/internal/runtimeconfig"

var (
	ErrDefaultLanguageRequired  = runtimeconfig.ErrDefaultLanguageRequired
	ErrStorageDriverUnknown     = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired       = runtimeconfig.ErrStorageDSNRequired
	ErrLinkCheckSlugRequired    = runtimeconfig.ErrLinkCheckSlugRequired
	ErrLinkCheckWorkersInvalid  = runtimeconfig.ErrLinkCheckWorkersInvalid
	ErrLinkCheckIntervalInvalid = runtimeconfig.ErrLinkCheckIntervalInvalid
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	StorageConfig   = runtimeconfig.StorageConfig
	Features        = runtimeconfig.Features
	LinkCheckConfig = runtimeconfig.LinkCheckConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv builds a configuration from REGIONCMS_* environment
// variables layered over the defaults.
func ConfigFromEnv() (Config, error) {
	return runtimeconfig.FromEnv()
}
