// Package move provides the runner for reordering entries and moving them
// between folders.
package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/printers"
	"tableflip.dev/tasktree/pkg/state"
)

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
	// To moves the entry into Dest at Position.
	To Direction = "to"
)

type Move struct {
	Session   *app.Session
	Direction Direction
	ID        entry.ID
	Dest      entry.ID
	Position  int
	ShowID    bool
}

func (n *Move) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not move, no session")
	}
	c := state.Command{ID: n.ID}
	switch n.Direction {
	case Up:
		c.Kind = state.MoveUp
	case Down:
		c.Kind = state.MoveDown
	case To:
		c.Kind = state.Move
		c.Dest = n.Dest
		c.Position = n.Position
	default:
		return fmt.Errorf("unknown move direction %q", n.Direction)
	}
	applied, err := n.Session.Apply(c)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Outcome(applied, n.Session.State)
	return nil
}
