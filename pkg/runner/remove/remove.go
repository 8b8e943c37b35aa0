// Package remove provides the runner for deleting an entry and everything
// below it.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/printers"
	"tableflip.dev/tasktree/pkg/state"
)

type Remove struct {
	Session *app.Session
	ID      entry.ID
	ShowID  bool
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not remove, no session")
	}
	applied, err := n.Session.Apply(state.Command{Kind: state.Delete, ID: n.ID})
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Outcome(applied, n.Session.State)
	return nil
}
