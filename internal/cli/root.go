// Package cli provides the Cobra command structure for mdnote.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// skipConfigAnnotation marks commands that run without loading configuration.
const skipConfigAnnotation = "mdnote/skip-config"

// NewRootCommand creates the root mdnote command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return NewRootCommandWithOptions(info, Options{})
}

// NewRootCommandWithOptions is NewRootCommand with an explicit environment.
func NewRootCommandWithOptions(info BuildInfo, opts Options) *cobra.Command {
	a := newApp(opts)

	rootCmd := &cobra.Command{
		Use:   "mdnote",
		Short: "A Markdown scratchpad with formatting, undo and a live preview",
		Long: `mdnote is a small Markdown note editor for the terminal.

Every change is saved as a new document in a bounded list of the ten most
recent notes. Formatting commands wrap the selected text or insert a
placeholder, previews are rendered to sanitized HTML or styled terminal
output, and "mdnote run" replays a script through one editing session so
undo works across steps.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipConfigAnnotation] == "true" {
				return nil
			}
			return a.loadConfig(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	// Global flags.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.configPath, "config", "", "path to config file")
	flags.BoolVar(&a.flags.debug, "debug", false, "enable debug logging")
	flags.StringVar(&a.flags.color, "color", "auto", "colorize output: auto, always, never")
	flags.BoolVar(&a.flags.ephemeral, "ephemeral", false, "keep documents in memory only")
	flags.StringVar(&a.flags.dataDir, "data-dir", "", "directory for saved documents")
	flags.StringVar(&a.flags.backend, "backend", "", "storage backend: file, sqlite, memory")

	rootCmd.AddCommand(newShowCommand(a))
	rootCmd.AddCommand(newWriteCommand(a))
	rootCmd.AddCommand(newFormatCommand(a))
	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newRestoreCommand(a))
	rootCmd.AddCommand(newDiffCommand(a))
	rootCmd.AddCommand(newStatsCommand(a))
	rootCmd.AddCommand(newRunCommand(a))
	rootCmd.AddCommand(newInitCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(a.flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
