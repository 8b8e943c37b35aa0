// Package add provides the runner for creating tasks and folders in the
// folder currently in view.
package add

import (
	"context"
	"errors"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/printers"
	"tableflip.dev/tasktree/pkg/state"
)

type Add struct {
	Session *app.Session
	Folder  bool
	Name    string
	ShowID  bool
}

func (n *Add) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not add, no session")
	}
	kind := state.AddTask
	if n.Folder {
		kind = state.AddFolder
	}
	applied, err := n.Session.Apply(state.Command{Kind: kind, Text: n.Name})
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Outcome(applied, n.Session.State)
	return nil
}
