package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/commands/options"
	"tableflip.dev/tasktree/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an entry. Deleting a folder deletes everything in it.",
		Example: `
tasktree rm 4
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, err := options.ParseID(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			e, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			r := remove.Remove{Session: e.session, ID: id, ShowID: ids.ShowID}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
