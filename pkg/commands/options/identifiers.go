package options

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/entry"
)

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.PersistentFlags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the id of each entry.")
}

// ParseID parses an entry id as printed by --show-id.
func ParseID(s string) (entry.ID, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: want a positive number", s)
	}
	return entry.ID(n), nil
}
