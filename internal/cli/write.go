package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/logging"
	"github.com/yaklabco/mdnote/pkg/fsutil"
	"github.com/yaklabco/mdnote/pkg/langdetect"
	"github.com/yaklabco/mdnote/pkg/session"
)

// stdinArg selects standard input for file arguments.
const stdinArg = "-"

// writeFlags holds the flags for the write command.
type writeFlags struct {
	fence  bool
	append bool
}

func newWriteCommand(a *app) *cobra.Command {
	flags := &writeFlags{}

	cmd := &cobra.Command{
		Use:   "write [file|-]",
		Short: "Replace the current document with new text",
		Long: `Replace the current document with the contents of a file or standard input
and save it as the newest entry in the recent-documents list.

With --fence the input is wrapped in a fenced code block labelled with the
detected language.`,
		Example: `  echo "# Hello" | mdnote write
  mdnote write notes.md
  mdnote write --fence main.go`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := stdinArg
			if len(args) == 1 {
				source = args[0]
			}
			return a.withSession(cmd, func(ctx context.Context, sess *session.Session) error {
				return a.runWrite(ctx, cmd, sess, source, flags)
			})
		},
	}

	cmd.Flags().BoolVar(&flags.fence, "fence", false, "wrap the input in a fenced code block")
	cmd.Flags().BoolVar(&flags.append, "append", false, "append to the current document instead of replacing it")

	return cmd
}

func (a *app) runWrite(ctx context.Context, cmd *cobra.Command, sess *session.Session, source string, flags *writeFlags) error {
	content, err := a.readInput(ctx, source)
	if err != nil {
		return err
	}

	text := string(content)
	if flags.fence {
		lang := langdetect.FromFilename(filepath.Base(source))
		if source == stdinArg || lang == langdetect.Unknown {
			lang = langdetect.Detect(content)
		}
		a.logger.Debug("fencing input", logging.FieldInput, source, "language", lang)
		if lang == langdetect.Unknown {
			lang = ""
		}
		text = fence(text, lang)
	}
	if flags.append {
		text = sess.Text() + text
	}

	if err := sess.Handle(ctx, session.TextChanged{Text: text}); err != nil {
		return err
	}
	if err := sess.LastPersistError(); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.styles(cmd.OutOrStdout()).FormatStatus(sess))
	return nil
}

// readInput reads a file argument, or standard input for "-".
func (a *app) readInput(ctx context.Context, source string) ([]byte, error) {
	if source == stdinArg {
		data, err := io.ReadAll(a.opts.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := fsutil.ReadFile(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return data, nil
}

// fence wraps body in a backtick fence longer than any backtick run inside it.
func fence(body, label string) string {
	ticks := "```"
	for strings.Contains(body, ticks) {
		ticks += "`"
	}
	if !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return ticks + label + "\n" + body + ticks + "\n"
}
