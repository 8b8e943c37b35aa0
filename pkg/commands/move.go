package commands

import (
	"context"
	"math"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/commands/options"
	"tableflip.dev/tasktree/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mv",
		Short: "Reorder entries or move them between folders.",
		Example: `
tasktree mv up 5
tasktree mv to 5 7 --pos 0
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addShift(cmd, move.Up, "Move an entry one place up in the folder in view, wrapping to the bottom.")
	addShift(cmd, move.Down, "Move an entry one place down in the folder in view, wrapping to the top.")
	addMoveTo(cmd)

	topLevel.AddCommand(cmd)
}

func addShift(parent *cobra.Command, dir move.Direction, short string) {
	cmd := &cobra.Command{
		Use:               string(dir) + " <id>",
		Short:             short,
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
			m := move.Move{Session: e.session, Direction: dir, ID: id, ShowID: ids.ShowID}
			return output.HandleError(m.Do(context.Background()))
		},
	}

	parent.AddCommand(cmd)
}

func addMoveTo(parent *cobra.Command) {
	mo := &options.MoveOptions{}
	cmd := &cobra.Command{
		Use:   "to <id> <folder-id>",
		Short: "Move an entry into a folder. A folder can't be moved into itself.",
		Example: `
tasktree mv to 5 7
tasktree mv to 5 1 --pos 0
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, err := options.ParseID(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			dest, err := options.ParseID(args[1])
			if err != nil {
				return output.HandleError(err)
			}
			pos := mo.Position
			if pos < 0 {
				// Clamped to the end of the destination.
				pos = math.MaxInt
			}
			e, err := openSession(false)
			if err != nil {
				return output.HandleError(err)
			}
			m := move.Move{
				Session:   e.session,
				Direction: move.To,
				ID:        id,
				Dest:      dest,
				Position:  pos,
				ShowID:    ids.ShowID,
			}
			return output.HandleError(m.Do(context.Background()))
		},
	}

	options.AddPositionArg(cmd, mo)
	parent.AddCommand(cmd)
}
