package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdnote/internal/ui/pretty"
	"github.com/yaklabco/mdnote/pkg/session"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the recently saved documents",
		Long: `List the saved documents, newest first. The index in the first column
is accepted by "mdnote restore" and "mdnote diff".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withSession(cmd, func(_ context.Context, sess *session.Session) error {
				out := cmd.OutOrStdout()
				table := pretty.NewTableFormatter(a.styles(out), terminalWidth(out, 0), nil)
				fmt.Fprint(out, table.FormatDocuments(sess.Documents()))
				return nil
			})
		},
	}
}
