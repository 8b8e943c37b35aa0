// Package list provides the runner that prints the folder in view, or the
// whole tree.
package list

import (
	"context"
	"errors"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/printers"
)

type List struct {
	Session *app.Session
	All     bool
	ShowID  bool
}

func (n *List) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not list, no session")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.All {
		pp.Tree(&n.Session.State.Root)
		pp.Editing(n.Session.State)
		return nil
	}
	pp.State(n.Session.State)
	return nil
}
