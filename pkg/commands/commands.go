package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	ids    = &options.IDOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tasktree",
		Short: options.Wrap80("Nested tasks and folders on the command line, synced through a snapshot server."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddShowIDArgs(cmd, ids)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addMove(topLevel)
	addToggle(topLevel)
	addRename(topLevel)
	addGo(topLevel)
	addBack(topLevel)
	addEdit(topLevel)
	addPull(topLevel)
	addPush(topLevel)
	addServe(topLevel)
	addUI(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addReset(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
