package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/runner/list"
)

func addReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Throw away the local state and start from an empty root folder.",
		Example: `
tasktree reset
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			if err := e.session.Reset(); err != nil {
				return output.HandleError(err)
			}
			l := list.List{Session: e.session, ShowID: ids.ShowID}
			return output.HandleError(l.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
