package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/pkg/format"
	"github.com/yaklabco/mdnote/pkg/session"
	"github.com/yaklabco/mdnote/pkg/textedit"
)

// formatFlags holds the flags for the format command.
type formatFlags struct {
	start int
	end   int
	level int
}

func newFormatCommand(a *app) *cobra.Command {
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "format <bold|italic|link|image|heading|h1-h6>",
		Short: "Apply Markdown formatting to a range of the current document",
		Long: `Wrap the selected range in Markdown syntax, or insert a placeholder at
the caret when the range is empty. Offsets count characters, not bytes.

Without --start the caret is placed at the end of the document. Without
--end the range is empty and starts at --start.`,
		Example: `  mdnote format bold --start 0 --end 5
  mdnote format link
  mdnote format heading --level 2 --start 0 --end 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := format.ParseOperation(args[0], flags.level)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUsage, err)
			}
			return a.withSession(cmd, func(ctx context.Context, sess *session.Session) error {
				return a.runFormat(ctx, cmd, sess, op, flags)
			})
		},
	}

	cmd.Flags().IntVar(&flags.start, "start", -1, "selection start offset")
	cmd.Flags().IntVar(&flags.end, "end", -1, "selection end offset")
	cmd.Flags().IntVar(&flags.level, "level", 1, "heading level (1-6)")

	return cmd
}

// selection resolves the flags against a text of length runes.
func (f *formatFlags) selection(length int) format.Selection {
	start := f.start
	if start < 0 {
		start = length
	}
	end := f.end
	if end < 0 {
		end = start
	}
	return format.Selection{Start: start, End: end}.Clamp(length)
}

func (a *app) runFormat(ctx context.Context, cmd *cobra.Command, sess *session.Session, op format.Operation, flags *formatFlags) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %w: %s", ErrUsage, format.ErrUnknownOperation, op)
	}

	sel := flags.selection(textedit.RuneLen(sess.Text()))
	if err := sess.Handle(ctx, session.ApplyFormat{Op: op, Selection: sel}); err != nil {
		return err
	}
	if err := sess.LastPersistError(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := a.styles(out)
	fmt.Fprint(out, styles.FormatCaretContext(sess.Text(), sess.Caret()))
	fmt.Fprintln(out, styles.FormatStatus(sess))
	return nil
}
