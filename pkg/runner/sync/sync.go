// Package sync provides the pull and push runners.
package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/printers"
)

// Pull replaces the local state with the remote snapshot.
type Pull struct {
	Session *app.Session
	Remote  string
	ShowID  bool
}

func (n *Pull) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not pull, no session")
	}
	if err := n.Session.Pull(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, color.New(color.Faint).Sprintf("pulled from %s", n.Remote))
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.State(n.Session.State)
	return nil
}

// Push replaces the remote snapshot with the local state.
type Push struct {
	Session *app.Session
	Remote  string
}

func (n *Push) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not push, no session")
	}
	if err := n.Session.Push(ctx); err != nil {
		return err
	}
	// Count includes the root.
	entries := n.Session.State.Root.Count() - 1
	_, _ = fmt.Fprintln(color.Output, color.New(color.Faint).Sprintf("pushed %d entries to %s", entries, n.Remote))
	return nil
}
