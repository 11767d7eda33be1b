package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/pkg/render"
	"github.com/yaklabco/mdnote/pkg/reporter"
	"github.com/yaklabco/mdnote/pkg/session"
)

// showFlags holds the flags for the show command.
type showFlags struct {
	format string
	raw    bool
	html   bool
	pretty bool
	json   bool
}

func newShowCommand(a *app) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current document",
		Long: `Print the most recently saved document.

By default the configured view is shown: sanitized HTML in preview mode or
the Markdown source in raw mode.`,
		Example: `  mdnote show
  mdnote show --raw
  mdnote show --pretty
  mdnote show --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatName := flags.selected()
			return a.withSession(cmd, func(ctx context.Context, sess *session.Session) error {
				return a.report(ctx, cmd.OutOrStdout(), sess, formatName)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "view", "output format: view, raw, html, pretty, json")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "shorthand for --format raw")
	cmd.Flags().BoolVar(&flags.html, "html", false, "shorthand for --format html")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "shorthand for --format pretty")
	cmd.Flags().BoolVar(&flags.json, "json", false, "shorthand for --format json")
	cmd.MarkFlagsMutuallyExclusive("format", "raw", "html", "pretty", "json")

	return cmd
}

func (f *showFlags) selected() string {
	switch {
	case f.raw:
		return string(reporter.FormatRaw)
	case f.html:
		return string(reporter.FormatHTML)
	case f.pretty:
		return string(reporter.FormatPretty)
	case f.json:
		return string(reporter.FormatJSON)
	default:
		return f.format
	}
}

// report writes the session document to w in the named format.
func (a *app) report(ctx context.Context, w io.Writer, sess *session.Session, formatName string) error {
	outFormat, err := reporter.ParseFormat(formatName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	rep, err := reporter.New(a.reporterOptions(w, outFormat))
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	return rep.Report(ctx, sess)
}

func (a *app) reporterOptions(w io.Writer, outFormat reporter.Format) reporter.Options {
	style := a.cfg.Preview.Style
	if !a.colorEnabled(w) {
		style = render.StyleNoTTY
	}

	width := a.cfg.Preview.WordWrap
	if width <= 0 {
		width = terminalWidth(w, render.DefaultWordWrap)
	}

	flavor, err := render.ParseFlavor(string(a.cfg.Flavor))
	if err != nil {
		flavor = render.FlavorGFM
	}

	return reporter.Options{
		Writer:   w,
		Format:   outFormat,
		Style:    style,
		WordWrap: width,
		Flavor:   flavor,
	}
}
