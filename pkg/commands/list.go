package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	all := false
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the folder in view.",
		Example: `
tasktree ls
tasktree ls --all --show-id
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			l := list.List{
				Session: e.session,
				All:     all,
				ShowID:  ids.ShowID,
			}
			return output.HandleError(l.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Show the whole tree instead of the folder in view.")
	topLevel.AddCommand(cmd)
}
