package configloader

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/config"
	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/session"
	"github.com/yaklabco/mdnote/pkg/store"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "editor.font_size").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// knownColorModes lists valid --color values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColorModes = map[config.ColorMode]bool{
	"":                 true,
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if _, err := render.ParseFlavor(string(cfg.Flavor)); err != nil {
		result.fail("flavor", cfg.Flavor, "invalid flavor %q; must be one of: commonmark, gfm", cfg.Flavor)
	}

	if cfg.LogLevel != "" && !logging.ValidLevel(cfg.LogLevel) {
		result.fail("log_level", cfg.LogLevel, "invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}

	if !knownColorModes[cfg.Color] {
		result.fail("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	validateStorage(cfg, result)
	validateEditor(cfg, result)
	validatePreview(cfg, result)

	return result
}

func validateStorage(cfg *config.Config, result *ValidationResult) {
	backend, err := store.ParseBackend(cfg.Storage.Backend)
	if err != nil {
		result.fail("storage.backend", cfg.Storage.Backend,
			"invalid backend %q; must be one of: file, sqlite, memory", cfg.Storage.Backend)
		return
	}

	if cfg.Storage.Path != "" && backend == store.BackendMemory {
		result.warn("storage.path", cfg.Storage.Path, "path is ignored by the memory backend")
	}
}

func validateEditor(cfg *config.Config, result *ValidationResult) {
	editor := cfg.Editor

	if editor.FontSize <= 0 {
		result.fail("editor.font_size", editor.FontSize, "font_size must be > 0")
	}
	if editor.MinFontSize <= 0 {
		result.fail("editor.min_font_size", editor.MinFontSize, "min_font_size must be > 0")
	}
	if editor.FontSize > 0 && editor.MinFontSize > 0 && editor.FontSize < editor.MinFontSize {
		result.warn("editor.font_size", editor.FontSize,
			"font_size %d is below min_font_size %d and will be raised", editor.FontSize, editor.MinFontSize)
	}

	if editor.HistoryLimit < 0 {
		result.fail("editor.history_limit", editor.HistoryLimit, "history_limit must be >= 0 (0 means unbounded)")
	}

	if _, err := session.ParseViewMode(editor.View); err != nil {
		result.fail("editor.view", editor.View, "invalid view %q; must be one of: preview, raw", editor.View)
	}

	for _, placeholder := range []struct{ field, raw string }{
		{"editor.link_url", editor.LinkURL},
		{"editor.image_url", editor.ImageURL},
	} {
		if placeholder.raw == "" {
			continue
		}
		if u, err := url.Parse(placeholder.raw); err != nil || u.Scheme == "" {
			result.warn(placeholder.field, placeholder.raw, "%q is not an absolute URL", placeholder.raw)
		}
	}
}

func validatePreview(cfg *config.Config, result *ValidationResult) {
	if cfg.Preview.WordWrap < 0 {
		result.fail("preview.word_wrap", cfg.Preview.WordWrap, "word_wrap must be >= 0 (0 means terminal width)")
	}

	if cfg.Preview.Style != "" && !render.ValidStyle(cfg.Preview.Style) {
		result.fail("preview.style", cfg.Preview.Style, "unknown preview style %q", cfg.Preview.Style)
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
