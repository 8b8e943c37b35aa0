package entry

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyEntry     = errors.New("entry: neither folder nor task")
	ErrRootNotFolder  = errors.New("entry: root must be a folder")
	ErrRootHasParent  = errors.New("entry: root must not have a parent")
	ErrDuplicateID    = errors.New("entry: duplicate id")
	ErrParentMismatch = errors.New("entry: parent does not match containing folder")
	ErrSharedFolder   = errors.New("entry: folder reachable twice")
)

// Check verifies the structural invariants of a tree rooted at root: the root
// is a parentless folder, ids are unique, every nested folder points back at
// the folder containing it, and no folder is reachable along two paths.
func Check(root *Entry) error {
	if root.Folder == nil {
		if root.Task != nil {
			return ErrRootNotFolder
		}
		return ErrEmptyEntry
	}
	if root.Folder.Parent != nil {
		return ErrRootHasParent
	}
	c := checker{ids: map[ID]struct{}{}, folders: map[*Folder]struct{}{}}
	return c.visit(root, nil)
}

type checker struct {
	ids     map[ID]struct{}
	folders map[*Folder]struct{}
}

func (c *checker) visit(e *Entry, container *Folder) error {
	if e.Folder != nil && e.Task != nil {
		return fmt.Errorf("%w: id %d is both", ErrEmptyEntry, e.ID())
	}
	if e.Folder == nil && e.Task == nil {
		return ErrEmptyEntry
	}
	id := e.ID()
	if _, dup := c.ids[id]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	c.ids[id] = struct{}{}

	f := e.Folder
	if f == nil {
		return nil
	}
	if _, seen := c.folders[f]; seen {
		return fmt.Errorf("%w: %d", ErrSharedFolder, id)
	}
	c.folders[f] = struct{}{}
	if container != nil && (f.Parent == nil || *f.Parent != container.ID) {
		return fmt.Errorf("%w: folder %d", ErrParentMismatch, id)
	}
	for i := range f.Entries {
		if err := c.visit(&f.Entries[i], f); err != nil {
			return err
		}
	}
	return nil
}

// MaxID returns the largest id in the tree.
func (e *Entry) MaxID() ID {
	var top ID
	e.Walk(func(x *Entry, _ int) bool {
		top = max(top, x.ID())
		return true
	})
	return top
}
