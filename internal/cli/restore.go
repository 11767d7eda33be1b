package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/pkg/session"
)

func newRestoreCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <index>",
		Short: "Make a saved document current again",
		Long: `Copy the document at index (see "mdnote list") to the top of the
recent-documents list so it becomes the current document.`,
		Example: `  mdnote restore 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, sess *session.Session) error {
				if err := sess.Restore(ctx, index); err != nil {
					return err
				}
				if err := sess.LastPersistError(); err != nil {
					return fmt.Errorf("save document: %w", err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprint(out, a.styles(out).FormatSuccess(fmt.Sprintf("restored document %d", index)))
				return nil
			})
		},
	}
}

// parseIndex parses a document index argument.
func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: invalid document index %q", ErrUsage, arg)
	}
	return index, nil
}
