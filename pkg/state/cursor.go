package state

import "tableflip.dev/tasktree/pkg/entry"

// Go moves the view to id. The id is not checked; an unknown id simply makes
// Current fall back to the root.
func (s *State) Go(id entry.ID) {
	s.View = id
}

// GoBack moves the view to the parent of the folder in view. It fails when the
// view doesn't resolve to a folder or the folder is the root.
func (s *State) GoBack() bool {
	f := s.Root.FindFolder(s.View)
	if f == nil || f.Parent == nil {
		return false
	}
	s.View = *f.Parent
	return true
}

// Current returns the folder in view, or the root when the view no longer
// resolves to a folder (for example after that folder was deleted).
func (s *State) Current() *entry.Folder {
	if f := s.Root.FindFolder(s.View); f != nil {
		return f
	}
	return s.Root.Folder
}

// Breadcrumbs returns the names from the root down to the folder in view.
func (s *State) Breadcrumbs() []string {
	cur := s.Current()
	path := s.Root.Path(cur.ID)
	names := make([]string, 0, len(path))
	for _, id := range path {
		names = append(names, s.Root.Find(id).Name())
	}
	return names
}
