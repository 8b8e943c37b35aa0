package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task or folder to the folder in view.",
		Example: `
tasktree add task buy milk
tasktree add folder groceries
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addNew(cmd, "task", false)
	addNew(cmd, "folder", true)

	topLevel.AddCommand(cmd)
}

func addNew(parent *cobra.Command, use string, folder bool) {
	cmd := &cobra.Command{
		Use:   use + " <name>",
		Short: "Add a " + use,
		Example: `
tasktree add ` + use + ` some name
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			a := add.Add{
				Session: e.session,
				Folder:  folder,
				Name:    strings.Join(args, " "),
				ShowID:  ids.ShowID,
			}
			return output.HandleError(a.Do(context.Background()))
		},
	}

	parent.AddCommand(cmd)
}
