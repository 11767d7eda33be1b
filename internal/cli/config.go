package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/configloader"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.ToYAML()
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:         "env",
		Short:       "List the supported MDNOTE_* environment variables",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			styles := a.styles(out)
			descriptions := configloader.ListEnvVars()
			for _, name := range configloader.EnvVarNames() {
				fmt.Fprintf(out, "%s  %s\n", styles.Label.Render(fmt.Sprintf("%-28s", name)), descriptions[name])
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show which configuration files and data directory are used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printPaths(cmd.OutOrStdout())
			return nil
		},
	})

	return cmd
}

func (a *app) printPaths(w io.Writer) {
	styles := a.styles(w)
	row := func(label, value string) {
		if value == "" {
			value = styles.Dim.Render("(none)")
		}
		fmt.Fprintf(w, "%s %s\n", styles.Label.Render(fmt.Sprintf("%-9s", label+":")), value)
	}

	paths := a.load.Paths
	row("user", paths.User)
	row("project", paths.Project)
	row("explicit", paths.Explicit)
	row("data", a.load.DataDir)
	row("backend", a.cfg.StorageBackend())
}
