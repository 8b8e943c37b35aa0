package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/commands/options"
	"tableflip.dev/tasktree/pkg/runner/nav"
)

func addGo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "go <folder-id>",
		Aliases: []string{"cd"},
		Short:   "View a folder.",
		Example: `
tasktree go 7
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
			g := nav.Go{Session: e.session, ID: id, ShowID: ids.ShowID}
			return output.HandleError(g.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addBack(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "back",
		Short: "View the parent of the folder in view.",
		Example: `
tasktree back
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			b := nav.Back{Session: e.session, ShowID: ids.ShowID}
			return output.HandleError(b.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
