package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tasktree/pkg/commands/options"
	"tableflip.dev/tasktree/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit text in steps: begin, input, then finish or cancel.",
		Long: options.Wrap80(`An edit can span several invocations. Begin on an entry id to rename it, or
on "task" or "folder" to add one to the folder in view. The pending text is kept
in the local cache until the edit is finished or cancelled.`),
		Example: `
tasktree edit begin task
tasktree edit input buy milk
tasktree edit finish
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEditStep(cmd, &cobra.Command{
		Use:               "begin <id|task|folder>",
		Short:             "Start editing an entry name, or a new task or folder.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: entryCompletions,
	}, func(args []string) (edit.Edit, error) {
		switch args[0] {
		case "task":
			return edit.Edit{Action: edit.Begin, Target: edit.TargetTask}, nil
		case "folder":
			return edit.Edit{Action: edit.Begin, Target: edit.TargetFolder}, nil
		}
		id, err := options.ParseID(args[0])
		return edit.Edit{Action: edit.Begin, ID: id}, err
	})
	addEditStep(cmd, &cobra.Command{
		Use:   "input <text>",
		Short: "Replace the pending text.",
		Args:  cobra.ArbitraryArgs,
	}, func(args []string) (edit.Edit, error) {
		return edit.Edit{Action: edit.Input, Text: strings.Join(args, " ")}, nil
	})
	addEditStep(cmd, &cobra.Command{
		Use:   "finish",
		Short: "Commit the pending text. Empty text changes nothing.",
		Args:  cobra.NoArgs,
	}, func([]string) (edit.Edit, error) {
		return edit.Edit{Action: edit.Finish}, nil
	})
	addEditStep(cmd, &cobra.Command{
		Use:   "cancel",
		Short: "Drop the pending text.",
		Args:  cobra.NoArgs,
	}, func([]string) (edit.Edit, error) {
		return edit.Edit{Action: edit.Cancel}, nil
	})

	topLevel.AddCommand(cmd)
}

func addEditStep(parent, cmd *cobra.Command, build func(args []string) (edit.Edit, error)) {
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ed, err := build(args)
		if err != nil {
			return output.HandleError(err)
		}
		e, err := openSession(false)
		if err != nil {
			return output.HandleError(err)
		}
		ed.Session = e.session
		ed.ShowID = ids.ShowID
		return output.HandleError(ed.Do(context.Background()))
	}
	parent.AddCommand(cmd)
}
