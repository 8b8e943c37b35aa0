package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the local state and where it is stored.",
		Example: `
tasktree info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:  e.config,
				Cache:   e.cache,
				Session: e.session,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
