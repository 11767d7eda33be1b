package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/internal/script"
	"github.com/yaklabco/mdnote/pkg/session"
)

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script|-]",
		Short: "Replay an editing script through one session",
		Long: `Execute a script of editor commands, one per line, against a single
session. Undo history survives between steps, so "undo" reverts the
previous step. Blank lines and lines starting with # are ignored.

Verbs: ` + strings.Join(script.Verbs(), ", ") + `

Text payloads run to the end of the line and may be Go-quoted to include
escapes such as \n.`,
		Example: `  printf 'text "Hello world"\nselect 6 11\nbold\nshow raw\n' | mdnote run
  mdnote run edits.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := stdinArg
			if len(args) == 1 {
				source = args[0]
			}

			content, err := a.readInput(commandContext(cmd), source)
			if err != nil {
				return err
			}
			steps, err := script.Parse(bytes.NewReader(content))
			if err != nil {
				return err
			}

			return a.withSession(cmd, func(ctx context.Context, sess *session.Session) error {
				return a.runSteps(ctx, cmd.OutOrStdout(), sess, steps)
			})
		},
	}
}

func (a *app) runSteps(ctx context.Context, w io.Writer, sess *session.Session, steps []script.Step) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled: %w", err)
		}

		a.logger.Debug("running step", logging.FieldCommand, step.Verb, "line", step.Line)

		if err := a.runStep(ctx, w, sess, step); err != nil {
			return fmt.Errorf("line %d: %w", step.Line, err)
		}
	}

	if err := sess.LastPersistError(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (a *app) runStep(ctx context.Context, w io.Writer, sess *session.Session, step script.Step) error {
	if cmd := step.Command(sess); cmd != nil {
		return sess.Handle(ctx, cmd)
	}

	switch step.Verb {
	case script.VerbRestore:
		return sess.Restore(ctx, step.Ints[0])
	case script.VerbShow:
		return a.report(ctx, w, sess, step.Text)
	case script.VerbStatus:
		_, err := fmt.Fprintln(w, a.styles(w).FormatStatus(sess))
		return err
	case script.VerbHistory:
		snapshots, cursor := sess.History()
		_, err := fmt.Fprint(w, a.styles(w).FormatHistory(snapshots, cursor))
		return err
	default:
		return fmt.Errorf("%w: unhandled verb %q", script.ErrSyntax, step.Verb)
	}
}
