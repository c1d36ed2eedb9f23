package logging

import (
	"context"

	"github.com/goliatone/go-regioncms/pkg/interfaces"
)

const (
	rootModule         = "regioncms"
	languagesModule    = "regioncms.languages"
	translationsModule = "regioncms.translations"
	pagesModule        = "regioncms.pages"
	linkcheckModule    = "regioncms.linkcheck"
	regionsModule      = "regioncms.regions"
	contentModule      = "regioncms.content"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// LanguagesLogger returns the logger namespace reserved for the language tree.
func LanguagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, languagesModule)
}

// TranslationsLogger returns the logger namespace reserved for revision chains.
func TranslationsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, translationsModule)
}

// PagesLogger returns the logger namespace reserved for page services.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// RegionsLogger returns the logger namespace reserved for region lifecycle.
func RegionsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, regionsModule)
}

// ContentLogger returns the logger namespace shared by the flat content
// kinds (events, locations, imprints).
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// LinkCheckLogger returns the logger namespace reserved for URL validation.
func LinkCheckLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, linkcheckModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
