// Package toggle provides the runner for flipping a task between open and
// done.
package toggle

import (
	"context"
	"errors"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/printers"
	"tableflip.dev/tasktree/pkg/state"
)

// Toggle flips the done flag of a task.
type Toggle struct {
	Session *app.Session
	ID      entry.ID
	ShowID  bool
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not toggle, no session")
	}
	applied, err := n.Session.Apply(state.Command{Kind: state.Toggle, ID: n.ID})
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Outcome(applied, n.Session.State)
	return nil
}
