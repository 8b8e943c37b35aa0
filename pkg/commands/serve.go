package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/commands/options"
	"tableflip.dev/tasktree/pkg/runner/serve"
	"tableflip.dev/tasktree/pkg/store"
)

func addServe(topLevel *cobra.Command) {
	so := &options.ServeOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the snapshot that clients push to and pull from.",
		Long: options.Wrap80(`Serves GET and POST /tasks. The snapshot is kept in a single file, tasks.db
by default; set TASKTREE_TASKS to keep it elsewhere.`),
		Example: `
tasktree serve
TASKTREE_TASKS=/var/lib/tasktree/tasks.db tasktree serve --listen :8000 --log-file /var/log/tasktree.log
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			s := serve.Serve{
				Config:     cfg,
				ListenAddr: so.Listen,
				LogFile:    so.LogFile,
				Watch:      so.Watch,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddServeArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
