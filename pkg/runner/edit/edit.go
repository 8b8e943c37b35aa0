// Package edit provides the runner for driving the edit session one step at
// a time, so a text edit can span several invocations.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/printers"
	"tableflip.dev/tasktree/pkg/state"
)

type Action string

const (
	Begin  Action = "begin"
	Input  Action = "input"
	Finish Action = "finish"
	Cancel Action = "cancel"
)

// Target names the input slot to begin on instead of an entry id.
type Target string

const (
	TargetEntry  Target = ""
	TargetTask   Target = "task"
	TargetFolder Target = "folder"
)

type Edit struct {
	Session *app.Session
	Action  Action
	Target  Target
	ID      entry.ID
	Text    string
	ShowID  bool
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not edit, no session")
	}
	st := n.Session.State
	var c state.Command
	switch n.Action {
	case Begin:
		id := n.ID
		switch n.Target {
		case TargetTask:
			id = st.AddTask
		case TargetFolder:
			id = st.AddFolder
		case TargetEntry:
			if st.Root.Find(id) == nil {
				return fmt.Errorf("no entry with id %d", id)
			}
		default:
			return fmt.Errorf("unknown edit target %q", n.Target)
		}
		c = state.Command{Kind: state.BeginInput, ID: id}
	case Input:
		c = state.Command{Kind: state.UpdateInput, Text: n.Text}
	case Finish:
		id, _ := st.EditTarget()
		c = state.Command{Kind: state.FinishInput, ID: id}
	case Cancel:
		c = state.Command{Kind: state.CancelInput}
	default:
		return fmt.Errorf("unknown edit action %q", n.Action)
	}

	applied, err := n.Session.Apply(c)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Outcome(applied, st)
	return nil
}
