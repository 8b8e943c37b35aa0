package commands

import (
	"context"

	"github.com/spf13/cobra"

	teaui "tableflip.dev/tasktree/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
tasktree ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openSession(true)
			if err != nil {
				return err
			}
			i := teaui.UI{Session: e.session}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
