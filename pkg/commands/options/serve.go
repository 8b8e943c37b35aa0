package options

import (
	"github.com/spf13/cobra"
)

// ServeOptions
type ServeOptions struct {
	Listen  string
	LogFile string
	Watch   bool
}

func AddServeArgs(cmd *cobra.Command, o *ServeOptions) {
	cmd.Flags().StringVar(&o.Listen, "listen", "",
		"Address to listen on. Defaults to the configured listen address.")
	cmd.Flags().StringVar(&o.LogFile, "log-file", "",
		"Write logs to this file, rotated, instead of stderr.")
	cmd.Flags().BoolVar(&o.Watch, "watch", true,
		"Log every change to the snapshot file, including pushes served here.")
}
