package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the legend for list markers and ui keys.",
		Example: `
tasktree key
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := key.Key{}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
