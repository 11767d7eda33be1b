package configloader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdnote/pkg/config"
)

// ResolveDataDir returns the directory for persisted documents: cfg.DataDir
// with a leading ~/ expanded, or $XDG_DATA_HOME/mdnote, or ~/.local/share/mdnote.
func ResolveDataDir(cfg *config.Config) string {
	if cfg != nil && cfg.DataDir != "" {
		return expandHome(cfg.DataDir)
	}

	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".local", "share", appName)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
