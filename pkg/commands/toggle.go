package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/commands/options"
	"tableflip.dev/tasktree/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"x"},
		Short:   "Mark a task done, or open again.",
		Example: `
tasktree toggle 4
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
			s := toggle.Toggle{Session: e.session, ID: id, ShowID: ids.ShowID}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
