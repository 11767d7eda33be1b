// Package config defines the configuration types for mdnote.
// These types are pure data with no dependency on how they are loaded.
package config

// Flavor specifies the Markdown dialect used for previews.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Storage backend names.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// View names.
const (
	ViewPreview = "preview"
	ViewRaw     = "raw"
)

// ColorMode controls styled terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// StorageConfig selects where recent documents are persisted.
type StorageConfig struct {
	// Backend is "file", "sqlite" or "memory".
	Backend string `yaml:"backend"`

	// Path overrides the storage location derived from data_dir.
	Path string `yaml:"path,omitempty"`

	// Backup keeps a sidecar copy of the previous state (file backend).
	Backup bool `yaml:"backup"`
}

// EditorConfig holds editing session settings.
type EditorConfig struct {
	FontSize     int    `yaml:"font_size"`
	MinFontSize  int    `yaml:"min_font_size"`
	View         string `yaml:"view"`
	HistoryLimit int    `yaml:"history_limit"`
	PersistUndo  bool   `yaml:"persist_undo"`
	LinkURL      string `yaml:"link_url"`
	ImageURL     string `yaml:"image_url"`
}

// PreviewConfig controls terminal previews.
type PreviewConfig struct {
	// WordWrap is the wrap width; 0 uses the terminal width.
	WordWrap int `yaml:"word_wrap"`

	// Style is a glamour style name.
	Style string `yaml:"style"`
}

// Config is the root configuration structure for mdnote.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// DataDir holds persisted documents. Empty resolves to the XDG data directory.
	DataDir string `yaml:"data_dir,omitempty"`

	Storage StorageConfig `yaml:"storage"`
	Editor  EditorConfig  `yaml:"editor"`
	Preview PreviewConfig `yaml:"preview"`

	// CLI-level options (not persisted to config files).

	// Ephemeral forces the memory backend.
	Ephemeral bool `yaml:"-"`

	// Color controls styled output.
	Color ColorMode `yaml:"-"`
}

// Default values used by NewConfig.
const (
	DefaultFontSize     = 16
	DefaultMinFontSize  = 8
	DefaultHistoryLimit = 0
	DefaultLinkURL      = "https://example.com"
	DefaultImageURL     = "https://example.com/image.jpg"
	DefaultStyle        = "dracula"
)

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:   FlavorGFM,
		LogLevel: "info",
		Storage: StorageConfig{
			Backend: BackendFile,
			Backup:  true,
		},
		Editor: EditorConfig{
			FontSize:     DefaultFontSize,
			MinFontSize:  DefaultMinFontSize,
			View:         ViewPreview,
			HistoryLimit: DefaultHistoryLimit,
			PersistUndo:  false,
			LinkURL:      DefaultLinkURL,
			ImageURL:     DefaultImageURL,
		},
		Preview: PreviewConfig{
			WordWrap: 0,
			Style:    DefaultStyle,
		},
		Color: ColorAuto,
	}
}

// StorageBackend returns the effective backend, honoring Ephemeral.
func (c *Config) StorageBackend() string {
	if c.Ephemeral {
		return BackendMemory
	}
	if c.Storage.Backend == "" {
		return BackendFile
	}
	return c.Storage.Backend
}
