package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/commands/options"
	tsync "tableflip.dev/tasktree/pkg/runner/sync"
)

func addPull(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pull",
		Short: options.Wrap80("Replace the local state with the remote snapshot. Local changes that were not pushed are lost."),
		Example: `
tasktree pull
TASKTREE_REMOTE=http://10.0.0.2:8000 tasktree pull
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(true)
			if err != nil {
				return output.HandleError(err)
			}
			p := tsync.Pull{Session: e.session, Remote: e.config.RemoteURL(), ShowID: ids.ShowID}
			return output.HandleError(p.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addPush(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "push",
		Short: options.Wrap80("Replace the remote snapshot with the local state. The last push wins."),
		Example: `
tasktree push
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(true)
			if err != nil {
				return output.HandleError(err)
			}
			p := tsync.Push{Session: e.session, Remote: e.config.RemoteURL()}
			return output.HandleError(p.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
