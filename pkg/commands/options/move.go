package options

import (
	"github.com/spf13/cobra"
)

// MoveOptions
type MoveOptions struct {
	Position int
}

func AddPositionArg(cmd *cobra.Command, o *MoveOptions) {
	cmd.Flags().IntVar(&o.Position, "pos", -1,
		"Position in the destination folder, 0 is first. Defaults to the end.")
}
