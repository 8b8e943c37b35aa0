package state

import "tableflip.dev/tasktree/pkg/entry"

// EditTarget reports the target of the edit in progress, if any.
func (s *State) EditTarget() (entry.ID, bool) {
	if s.Editing == nil {
		return 0, false
	}
	return *s.Editing, true
}

// BeginInput starts editing id, replacing any edit already in progress. The
// pending text is seeded with the entry's current name; the add slots start
// empty.
func (s *State) BeginInput(id entry.ID) {
	s.Editing = &id
	s.Input = ""
	if id == s.AddTask || id == s.AddFolder {
		return
	}
	if e := s.Root.Find(id); e != nil {
		s.Input = e.Name()
	}
}

// UpdateInput replaces the pending text. Ignored when nothing is being edited.
func (s *State) UpdateInput(text string) bool {
	if s.Editing == nil {
		return false
	}
	s.Input = text
	return true
}

// FinishInput commits the pending text to id: a new task or folder in the
// current view for the add slots, a rename otherwise. The session ends and the
// pending text is cleared whether or not the commit applied. Reports whether
// the tree changed.
func (s *State) FinishInput(id entry.ID) bool {
	if s.Editing == nil {
		return false
	}
	text := s.Input
	s.Editing = nil
	s.Input = ""

	parent := s.Current().ID
	switch id {
	case s.AddTask:
		_, ok := s.Root.InsertTask(parent, text, &s.IDs)
		return ok
	case s.AddFolder:
		_, ok := s.Root.InsertFolder(parent, text, &s.IDs)
		return ok
	default:
		return s.Root.Rename(id, text)
	}
}

// CancelInput ends the session without committing anything.
func (s *State) CancelInput() bool {
	if s.Editing == nil {
		return false
	}
	s.Editing = nil
	s.Input = ""
	return true
}
