// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, layered file loading,
// environment variable support, CLI overrides and validation.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdnote/pkg/config"
	"github.com/yaklabco/mdnote/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// ErrConfigExists is returned by WriteConfig when the target exists and force is false.
var ErrConfigExists = errors.New("config file already exists")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	ExplicitPath string

	// ConfigHome overrides $XDG_CONFIG_HOME when locating the user config.
	ConfigHome string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// LookupEnv replaces os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// Overrides contains configuration from CLI flags.
	// These take highest precedence.
	Overrides *Overrides
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// DataDir is the resolved directory for persisted documents.
	DataDir string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by layering all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.Overrides)
//  2. Environment variables (MDNOTE_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.mdnote.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/mdnote/config.yaml)
//  6. Defaults
//
// Each file is decoded onto the configuration built so far, so keys absent
// from a file keep their lower-precedence value and present keys (including
// false and zero) replace it.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	paths, err := DiscoverPaths(ctx, opts.WorkingDir, opts.ConfigHome)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		if err := loadConfigFile(ctx, cfg, layer.path); err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg, opts.LookupEnv); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	cfg = merge(cfg, opts.Overrides)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	result.DataDir = ResolveDataDir(cfg)
	return result, nil
}

// loadConfigFile decodes the YAML file at path onto cfg.
func loadConfigFile(ctx context.Context, cfg *config.Config, path string) error {
	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := config.DecodeInto(cfg, data); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	return nil
}

// WriteConfig writes data to path, creating parent directories.
// An existing file is only replaced when force is set.
func WriteConfig(ctx context.Context, path string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, path, data, configFilePermissions); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
