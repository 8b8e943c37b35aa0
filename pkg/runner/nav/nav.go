// Package nav provides the runners that move the view between folders.
package nav

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/printers"
	"tableflip.dev/tasktree/pkg/state"
)

// Go points the view at the folder ID. An id that is not a folder leaves the
// view and the cache alone and is reported as no change.
type Go struct {
	Session *app.Session
	ID      entry.ID
	ShowID  bool
	Out     io.Writer
}

func (n *Go) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not go, no session")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	if n.Session.State.Root.FindFolder(n.ID) == nil {
		pp.Outcome(false, n.Session.State)
		return nil
	}
	applied, err := n.Session.Apply(state.Command{Kind: state.Go, ID: n.ID})
	if err != nil {
		return err
	}
	pp.Outcome(applied, n.Session.State)
	return nil
}

// Back moves the view to the parent of the folder in view.
type Back struct {
	Session *app.Session
	ShowID  bool
	Out     io.Writer
}

func (n *Back) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not go back, no session")
	}
	applied, err := n.Session.Apply(state.Command{Kind: state.GoBack})
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Outcome(applied, n.Session.State)
	return nil
}
