package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/pkg/diff"
	"github.com/yaklabco/mdnote/pkg/session"
)

func newDiffCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff [from] [to]",
		Short: "Show the changes between two saved documents",
		Long: `Print a unified diff between two entries of the recent-documents list.
Indexes are those shown by "mdnote list"; they default to 1 and 0, the
previous and current documents.`,
		Example: `  mdnote diff
  mdnote diff 3 0`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := 1, 0
			var err error
			if len(args) > 0 {
				if from, err = parseIndex(args[0]); err != nil {
					return err
				}
			}
			if len(args) > 1 {
				if to, err = parseIndex(args[1]); err != nil {
					return err
				}
			}

			return a.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				docs := sess.Documents()
				for _, index := range []int{from, to} {
					if index >= len(docs) {
						return fmt.Errorf("%w: %d (have %d)", session.ErrIndexOutOfRange, index, len(docs))
					}
				}

				d := diff.Compute(
					fmt.Sprintf("document %d", from),
					fmt.Sprintf("document %d", to),
					docs[from].Content,
					docs[to].Content,
				)

				out := cmd.OutOrStdout()
				fmt.Fprint(out, a.styles(out).FormatDiff(d))
				return nil
			})
		},
	}
}
