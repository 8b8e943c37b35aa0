package state

import (
	"fmt"

	"tableflip.dev/tasktree/pkg/entry"
)

// Kind names a command.
type Kind int

const (
	Go Kind = iota
	GoBack
	Delete
	AddTask
	AddFolder
	MoveUp
	MoveDown
	Move
	Toggle
	BeginInput
	UpdateInput
	FinishInput
	CancelInput
)

var kindNames = map[Kind]string{
	Go:          "go",
	GoBack:      "back",
	Delete:      "delete",
	AddTask:     "add-task",
	AddFolder:   "add-folder",
	MoveUp:      "move-up",
	MoveDown:    "move-down",
	Move:        "move",
	Toggle:      "toggle",
	BeginInput:  "begin-input",
	UpdateInput: "update-input",
	FinishInput: "finish-input",
	CancelInput: "cancel-input",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Command is one discrete user action. Only the fields relevant to Kind are
// read: ID for the entry acted on, Dest and Position for Move, Text for the
// add and input commands.
type Command struct {
	Kind     Kind
	ID       entry.ID
	Dest     entry.ID
	Position int
	Text     string
}

func (c Command) String() string {
	switch c.Kind {
	case GoBack, CancelInput:
		return c.Kind.String()
	case AddTask, AddFolder, UpdateInput:
		return fmt.Sprintf("%s %q", c.Kind, c.Text)
	case Move:
		return fmt.Sprintf("%s %d -> %d@%d", c.Kind, c.ID, c.Dest, c.Position)
	}
	return fmt.Sprintf("%s %d", c.Kind, c.ID)
}

// Apply runs c against s and reports whether it had an effect. Lookups that
// miss, type mismatches and empty names are all reported as false.
func (s *State) Apply(c Command) bool {
	switch c.Kind {
	case Go:
		s.Go(c.ID)
		return true
	case GoBack:
		return s.GoBack()
	case Delete:
		return s.Root.Delete(c.ID)
	case AddTask:
		_, ok := s.Root.InsertTask(s.Current().ID, c.Text, &s.IDs)
		return ok
	case AddFolder:
		_, ok := s.Root.InsertFolder(s.Current().ID, c.Text, &s.IDs)
		return ok
	case MoveUp:
		return s.Root.MoveUp(s.Current().ID, c.ID)
	case MoveDown:
		return s.Root.MoveDown(s.Current().ID, c.ID)
	case Move:
		return s.Root.Move(c.Dest, c.ID, c.Position)
	case Toggle:
		return s.Root.Toggle(c.ID)
	case BeginInput:
		s.BeginInput(c.ID)
		return true
	case UpdateInput:
		return s.UpdateInput(c.Text)
	case FinishInput:
		return s.FinishInput(c.ID)
	case CancelInput:
		return s.CancelInput()
	}
	return false
}
