package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/mdnote/internal/configloader"
	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/internal/ui/pretty"
	"github.com/yaklabco/mdnote/pkg/config"
	"github.com/yaklabco/mdnote/pkg/format"
	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/session"
	"github.com/yaklabco/mdnote/pkg/store"
)

// Options customizes the environment a command tree runs in.
// Zero values use the process environment.
type Options struct {
	// Stdin is read by "write -" and "run -".
	Stdin io.Reader

	// WorkingDir is where project config discovery and init start.
	WorkingDir string

	// ConfigHome overrides $XDG_CONFIG_HOME.
	ConfigHome string

	// LookupEnv replaces os.LookupEnv for MDNOTE_* variables.
	LookupEnv func(string) (string, bool)
}

// globalFlags holds the persistent flags shared by all commands.
type globalFlags struct {
	configPath string
	debug      bool
	color      string
	ephemeral  bool
	dataDir    string
	backend    string
}

// app carries the resolved configuration for one command invocation.
type app struct {
	opts   Options
	flags  globalFlags
	cfg    *config.Config
	load   *configloader.LoadResult
	logger *log.Logger
}

func newApp(opts Options) *app {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	return &app{opts: opts}
}

// overrides converts changed persistent flags into configloader overrides.
func (a *app) overrides(cmd *cobra.Command) *configloader.Overrides {
	o := &configloader.Overrides{Ephemeral: a.flags.ephemeral}
	flags := cmd.Flags()

	if flags.Changed("color") {
		o.Color = &a.flags.color
	}
	if flags.Changed("data-dir") {
		o.DataDir = &a.flags.dataDir
	}
	if flags.Changed("backend") {
		o.Backend = &a.flags.backend
	}
	if a.flags.debug {
		level := "debug"
		o.LogLevel = &level
	}
	return o
}

// loadConfig resolves configuration and sets up logging. It runs before every command.
func (a *app) loadConfig(cmd *cobra.Command) error {
	ctx := commandContext(cmd)

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   a.opts.WorkingDir,
		ExplicitPath: a.flags.configPath,
		ConfigHome:   a.opts.ConfigHome,
		LookupEnv:    a.opts.LookupEnv,
		Overrides:    a.overrides(cmd),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	a.load = result
	a.cfg = result.Config
	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), a.cfg.LogLevel)
	if a.flags.debug {
		logging.SetLevel("debug")
	}

	for _, warning := range result.Warnings {
		a.logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		a.logger.Debug("loaded configuration", "files", result.LoadedFrom)
	}

	return nil
}

// openSession opens the configured store and starts a session on it.
// The returned function closes the store.
func (a *app) openSession(ctx context.Context) (*session.Session, func() error, error) {
	backend, err := store.ParseBackend(a.cfg.StorageBackend())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	storeOpts := store.Options{
		Backend: backend,
		DataDir: a.load.DataDir,
		Path:    a.cfg.Storage.Path,
		Backup:  a.cfg.Storage.Backup,
	}

	st, closer, err := store.Open(ctx, storeOpts)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", backend, err)
	}

	a.logger.Debug("opened store",
		logging.FieldBackend, backend,
		logging.FieldPath, storeOpts.ResolvedPath(),
	)

	flavor, err := render.ParseFlavor(string(a.cfg.Flavor))
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("%w: %w", ErrConfig, err), closer.Close())
	}
	view, err := session.ParseViewMode(a.cfg.Editor.View)
	if err != nil {
		return nil, nil, errors.Join(fmt.Errorf("%w: %w", ErrConfig, err), closer.Close())
	}

	sess := session.New(ctx, session.Options{
		Store:        st,
		Renderer:     render.NewHTML(render.HTMLOptions{Flavor: flavor, DetectLanguages: true}),
		Formatter:    format.New(a.cfg.Editor.LinkURL, a.cfg.Editor.ImageURL),
		Logger:       a.logger,
		FontSize:     a.cfg.Editor.FontSize,
		MinFontSize:  a.cfg.Editor.MinFontSize,
		View:         view,
		HistoryLimit: a.cfg.Editor.HistoryLimit,
		PersistUndo:  a.cfg.Editor.PersistUndo,
	})

	return sess, closer.Close, nil
}

// styles returns output styles for w honoring the color mode.
func (a *app) styles(w io.Writer) *pretty.Styles {
	return pretty.NewStyles(a.colorEnabled(w))
}

func (a *app) colorEnabled(w io.Writer) bool {
	mode := string(config.ColorAuto)
	if a.cfg != nil && a.cfg.Color != "" {
		mode = string(a.cfg.Color)
	}
	return pretty.IsColorEnabled(mode, w)
}

// terminalWidth returns the width of w when it is a terminal, or fallback.
func terminalWidth(w io.Writer, fallback int) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallback
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// withSession runs fn with an open session and closes the store afterwards.
func (a *app) withSession(cmd *cobra.Command, fn func(ctx context.Context, sess *session.Session) error) (err error) {
	ctx := logging.WithLogger(commandContext(cmd), a.logger)

	sess, closeStore, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeStore(); err == nil && closeErr != nil {
			err = fmt.Errorf("close store: %w", closeErr)
		}
	}()

	return fn(ctx, sess)
}
