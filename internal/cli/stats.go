package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/internal/ui/pretty"
	"github.com/yaklabco/mdnote/pkg/outline"
	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/scan"
	"github.com/yaklabco/mdnote/pkg/session"
)

// statsFlags holds the flags for the stats command.
type statsFlags struct {
	json           bool
	exclude        []string
	jobs           int
	followSymlinks bool
}

func newStatsCommand(a *app) *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats [path...]",
		Short: "Summarize the structure of the current document or of Markdown files",
		Long: `Count the words, headings, links, images, tables, tasks and code blocks
of the current document and print its outline. Unlabelled code blocks are
reported with a detected language.

Given paths, Markdown files under them are analyzed concurrently instead
and a per-file summary with totals is printed.`,
		Example: `  mdnote stats
  mdnote stats --json
  mdnote stats ~/notes --exclude "archive/**"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flavor, err := render.ParseFlavor(string(a.cfg.Flavor))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrConfig, err)
			}
			analyzer := outline.New(flavor)

			if len(args) > 0 {
				return a.runScan(cmd, analyzer, args, flags)
			}

			return a.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				stats := analyzer.Analyze(sess.Text())
				if flags.json {
					return writeJSON(cmd.OutOrStdout(), stats)
				}
				a.printStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "print statistics as JSON")
	cmd.Flags().StringArrayVar(&flags.exclude, "exclude", nil, "glob of files or directories to skip (repeatable)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "files analyzed concurrently (0 = number of CPUs)")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")

	return cmd
}

func (a *app) runScan(cmd *cobra.Command, analyzer *outline.Analyzer, paths []string, flags *statsFlags) error {
	ctx := commandContext(cmd)

	result, err := scan.New(analyzer).Run(ctx, scan.Options{
		Paths:          paths,
		WorkingDir:     a.opts.WorkingDir,
		Exclude:        flags.exclude,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           flags.jobs,
	})
	if err != nil {
		return err
	}

	for _, file := range result.Files {
		if file.Err != nil {
			a.logger.Warn("could not analyze file", logging.FieldPath, file.Path, logging.FieldError, file.Err)
		}
	}
	a.logger.Debug("scan finished",
		"files", result.Totals.FilesDiscovered, "errors", result.Totals.FilesErrored)

	out := cmd.OutOrStdout()
	if flags.json {
		return writeJSON(out, result)
	}
	fmt.Fprint(out, pretty.NewTableFormatter(a.styles(out), terminalWidth(out, 0), nil).FormatScan(result, a.opts.WorkingDir))

	if result.HasErrors() {
		return fmt.Errorf("%d of %d files could not be analyzed", result.Totals.FilesErrored, result.Totals.FilesDiscovered)
	}
	return nil
}

func (a *app) printStats(w io.Writer, stats outline.Stats) {
	styles := a.styles(w)
	row := func(label string, value any) {
		fmt.Fprintf(w, "%s %s\n", styles.Label.Render(fmt.Sprintf("%-12s", label+":")), styles.Value.Render(fmt.Sprint(value)))
	}

	row("characters", stats.Runes)
	row("words", stats.Words)
	row("lines", stats.Lines)
	row("links", stats.Links)
	row("images", stats.Images)
	row("tables", stats.Tables)
	row("tasks", fmt.Sprintf("%d/%d", stats.TasksDone, stats.Tasks))

	if len(stats.Headings) > 0 {
		fmt.Fprintln(w, styles.Bold.Render("Outline:"))
		for _, h := range stats.Headings {
			indent := (h.Level - 1) * 2
			fmt.Fprintf(w, "  %*s%s %s\n", indent, "", styles.Dim.Render(fmt.Sprintf("L%d", h.Line)), h.Text)
		}
	}

	if len(stats.CodeBlocks) > 0 {
		fmt.Fprintln(w, styles.Bold.Render("Code blocks:"))
		for _, block := range stats.CodeBlocks {
			lang := block.Language
			if block.Detected {
				lang += styles.Dim.Render(" (detected)")
			}
			fmt.Fprintf(w, "  %s %s\n", styles.Dim.Render(fmt.Sprintf("L%d", block.Line)), lang)
		}
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
