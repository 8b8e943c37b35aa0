package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(tasktree completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(tasktree completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// entryCompletions offers the ids of the folder in view for the first
// argument, described by name.
func entryCompletions(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cache, err := store.LoadCache(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	st, _ := cache.Restore()
	return idCompletions(st.Current()), cobra.ShellCompDirectiveNoFileComp
}

func idCompletions(f *entry.Folder) []string {
	out := make([]string, 0, len(f.Entries))
	for _, e := range f.Entries {
		out = append(out, fmt.Sprintf("%d\t%s", e.ID(), e.Name()))
	}
	return out
}
