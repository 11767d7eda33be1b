package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/configloader"
	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/config"
)

// defaultProjectConfig is the file created by init in the working directory.
const defaultProjectConfig = ".mdnote.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	user   bool
	output string
}

func newInitCommand(a *app) *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a commented mdnote configuration file",
		Long: `Create a .mdnote.yml configuration file in the current directory with
every setting at its default value and documented. With --user the file is
written to the user configuration directory instead.`,
		Example: `  mdnote init
  mdnote init --user
  mdnote init --output notes.yml --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.user, "user", false, "write the user configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: .mdnote.yml)")
	cmd.MarkFlagsMutuallyExclusive("user", "output")

	return cmd
}

func (a *app) runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), "info")

	path, err := a.initPath(flags)
	if err != nil {
		return err
	}

	err = configloader.WriteConfig(commandContext(cmd), path, config.GenerateTemplate(nil), flags.force)
	if errors.Is(err, configloader.ErrConfigExists) {
		return fmt.Errorf("%w: %q already exists; use --force to overwrite", ErrUsage, path)
	}
	if err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, path)
	return nil
}

func (a *app) initPath(flags *initFlags) (string, error) {
	if flags.user {
		return configloader.UserConfigPath(a.opts.ConfigHome), nil
	}

	path := flags.output
	if path == "" {
		path = defaultProjectConfig
	}
	if filepath.IsAbs(path) {
		return path, nil
	}

	dir := a.opts.WorkingDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	return filepath.Join(dir, path), nil
}
