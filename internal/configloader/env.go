package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/mdnote/pkg/config"
)

// envVarPrefix is the prefix for all mdnote environment variables.
const envVarPrefix = "MDNOTE_"

// envBinding maps one environment variable (without prefix) to a config field.
type envBinding struct {
	suffix      string
	description string
	apply       func(cfg *config.Config, value string) error
}

func stringField(set func(*config.Config, string)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		set(cfg, value)
		return nil
	}
}

func boolField(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("expected true/false/1/0, got %q", value)
		}
		set(cfg, b)
		return nil
	}
}

func intField(set func(*config.Config, int)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", value)
		}
		set(cfg, i)
		return nil
	}
}

// envBindings lists every supported environment variable.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envBindings = []envBinding{
	{"FLAVOR", "Markdown flavor: commonmark or gfm",
		stringField(func(c *config.Config, v string) { c.Flavor = config.Flavor(v) })},
	{"LOG_LEVEL", "Log level: debug, info, warn or error",
		stringField(func(c *config.Config, v string) { c.LogLevel = v })},
	{"DATA_DIR", "Directory for persisted notes",
		stringField(func(c *config.Config, v string) { c.DataDir = v })},
	{"STORAGE_BACKEND", "Storage backend: file, sqlite or memory",
		stringField(func(c *config.Config, v string) { c.Storage.Backend = v })},
	{"STORAGE_PATH", "Storage file or database path",
		stringField(func(c *config.Config, v string) { c.Storage.Path = v })},
	{"STORAGE_BACKUP", "Keep a backup of the previous state: true or false",
		boolField(func(c *config.Config, v bool) { c.Storage.Backup = v })},
	{"EDITOR_FONT_SIZE", "Initial font size",
		intField(func(c *config.Config, v int) { c.Editor.FontSize = v })},
	{"EDITOR_MIN_FONT_SIZE", "Minimum font size",
		intField(func(c *config.Config, v int) { c.Editor.MinFontSize = v })},
	{"EDITOR_VIEW", "Initial view: preview or raw",
		stringField(func(c *config.Config, v string) { c.Editor.View = v })},
	{"EDITOR_HISTORY_LIMIT", "Maximum undo snapshots (0 = unbounded)",
		intField(func(c *config.Config, v int) { c.Editor.HistoryLimit = v })},
	{"EDITOR_PERSIST_UNDO", "Save undo results as new documents: true or false",
		boolField(func(c *config.Config, v bool) { c.Editor.PersistUndo = v })},
	{"EDITOR_LINK_URL", "Placeholder URL for inserted links",
		stringField(func(c *config.Config, v string) { c.Editor.LinkURL = v })},
	{"EDITOR_IMAGE_URL", "Placeholder URL for inserted images",
		stringField(func(c *config.Config, v string) { c.Editor.ImageURL = v })},
	{"PREVIEW_WORD_WRAP", "Terminal preview wrap width (0 = terminal width)",
		intField(func(c *config.Config, v int) { c.Preview.WordWrap = v })},
	{"PREVIEW_STYLE", "Terminal preview style",
		stringField(func(c *config.Config, v string) { c.Preview.Style = v })},
}

// LoadFromEnv applies MDNOTE_* environment variables to cfg using lookup
// (os.LookupEnv when nil). Empty values are ignored.
func LoadFromEnv(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for _, binding := range envBindings {
		name := envVarPrefix + binding.suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := binding.apply(cfg, value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
	}

	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	out := make(map[string]string, len(envBindings))
	for _, binding := range envBindings {
		out[envVarPrefix+binding.suffix] = binding.description
	}
	return out
}

// EnvVarNames returns the supported variable names, sorted.
func EnvVarNames() []string {
	names := make([]string, 0, len(envBindings))
	for _, binding := range envBindings {
		names = append(names, envVarPrefix+binding.suffix)
	}
	sort.Strings(names)
	return names
}
