package rename

import (
	"context"
	"errors"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/printers"
	"tableflip.dev/tasktree/pkg/state"
)

// Rename runs a whole edit session in one go: begin on ID, set the text,
// finish. Any edit that was already in progress is replaced.
type Rename struct {
	Session *app.Session
	ID      entry.ID
	Name    string
	ShowID  bool
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not rename, no session")
	}
	st := n.Session.State
	applied := st.Root.Find(n.ID) != nil
	if applied {
		st.Apply(state.Command{Kind: state.BeginInput, ID: n.ID})
		st.Apply(state.Command{Kind: state.UpdateInput, Text: n.Name})
		applied = st.Apply(state.Command{Kind: state.FinishInput, ID: n.ID})
	}
	if err := n.Session.Save(); err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Outcome(applied, st)
	return nil
}
