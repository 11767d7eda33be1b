package config

import (
	"fmt"
	"strings"
)

// templateHeader opens every generated config file.
const templateHeader = `# mdnote configuration
#
# Precedence (lowest to highest): defaults, user config, project config
# (.mdnote.yml), --config file, MDNOTE_* environment variables, flags.
`

// GenerateTemplate returns a commented YAML config populated from cfg.
// A nil cfg uses NewConfig.
func GenerateTemplate(cfg *Config) []byte {
	if cfg == nil {
		cfg = NewConfig()
	}

	var b strings.Builder
	b.WriteString(templateHeader)
	b.WriteString("\n")

	b.WriteString("# Markdown flavor for previews: commonmark or gfm.\n")
	fmt.Fprintf(&b, "flavor: %s\n\n", cfg.Flavor)

	b.WriteString("# Log level: debug, info, warn or error.\n")
	fmt.Fprintf(&b, "log_level: %s\n\n", cfg.LogLevel)

	b.WriteString("# Directory for persisted notes. Defaults to $XDG_DATA_HOME/mdnote.\n")
	if cfg.DataDir == "" {
		b.WriteString("# data_dir: ~/.local/share/mdnote\n\n")
	} else {
		fmt.Fprintf(&b, "data_dir: %q\n\n", cfg.DataDir)
	}

	b.WriteString("storage:\n")
	b.WriteString("  # file (notes.json), sqlite (mdnote.db) or memory.\n")
	fmt.Fprintf(&b, "  backend: %s\n", cfg.Storage.Backend)
	b.WriteString("  # Keep a copy of the previous state next to notes.json.\n")
	fmt.Fprintf(&b, "  backup: %t\n\n", cfg.Storage.Backup)

	b.WriteString("editor:\n")
	fmt.Fprintf(&b, "  font_size: %d\n", cfg.Editor.FontSize)
	fmt.Fprintf(&b, "  min_font_size: %d\n", cfg.Editor.MinFontSize)
	b.WriteString("  # Initial view: preview or raw.\n")
	fmt.Fprintf(&b, "  view: %s\n", cfg.Editor.View)
	b.WriteString("  # Maximum undo snapshots; 0 keeps all.\n")
	fmt.Fprintf(&b, "  history_limit: %d\n", cfg.Editor.HistoryLimit)
	b.WriteString("  # Save the text restored by undo as a new document.\n")
	fmt.Fprintf(&b, "  persist_undo: %t\n", cfg.Editor.PersistUndo)
	fmt.Fprintf(&b, "  link_url: %q\n", cfg.Editor.LinkURL)
	fmt.Fprintf(&b, "  image_url: %q\n\n", cfg.Editor.ImageURL)

	b.WriteString("preview:\n")
	b.WriteString("  # Wrap width for terminal previews; 0 uses the terminal width.\n")
	fmt.Fprintf(&b, "  word_wrap: %d\n", cfg.Preview.WordWrap)
	b.WriteString("  # Glamour style: dracula, dark, light, notty, ascii or auto.\n")
	fmt.Fprintf(&b, "  style: %s\n", cfg.Preview.Style)

	return []byte(b.String())
}
