package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/commands/options"
	"tableflip.dev/tasktree/pkg/runner/rename"
)

func addRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a task or folder.",
		Example: `
tasktree rename 4 buy oat milk
`,
		Args:              cobra.MinimumNArgs(2),
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
			r := rename.Rename{
				Session: e.session,
				ID:      id,
				Name:    strings.Join(args[1:], " "),
				ShowID:  ids.ShowID,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
