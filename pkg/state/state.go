// Package state holds the application state that is cached locally and
// synchronized with the remote: the entry tree plus the view cursor, the id
// allocator and the single in-progress text edit.
package state

import (
	"errors"
	"fmt"

	"tableflip.dev/tasktree/pkg/entry"
)

// RootName is the name given to the root folder of a fresh state.
const RootName = "Root folder"

// State is the unit that is persisted and synchronized as one snapshot.
type State struct {
	Root entry.Entry `json:"root"`
	// View is the folder currently displayed. It may point at an entry that no
	// longer exists; Current falls back to the root in that case.
	View entry.ID          `json:"view"`
	IDs  entry.IDAllocator `json:"id"`
	// Input is the pending text of the edit session.
	Input string `json:"input"`
	// AddTask and AddFolder address the "new task" and "new folder" inputs.
	// They are allocated like entry ids but never appear in the tree.
	AddTask   entry.ID  `json:"add_task"`
	AddFolder entry.ID  `json:"add_folder"`
	Editing   *entry.ID `json:"editing"`
}

var (
	ErrIDBeyondAllocator = errors.New("state: tree holds an id the allocator has not issued")
	ErrSlotInTree        = errors.New("state: input slot id is used by an entry")
	ErrSlotClash         = errors.New("state: add task and add folder share an id")
)

// New returns a fresh state holding a single empty root folder.
func New() *State {
	s := &State{}
	rootID := s.IDs.Next()
	s.AddTask = s.IDs.Next()
	s.AddFolder = s.IDs.Next()
	s.Root = entry.NewFolder(rootID, RootName, nil)
	s.View = rootID
	return s
}

// RootID returns the id of the root folder.
func (s *State) RootID() entry.ID {
	return s.Root.ID()
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	cp := *s
	cp.Root = s.Root.Clone()
	if s.Editing != nil {
		id := *s.Editing
		cp.Editing = &id
	}
	return &cp
}

// Normalized returns the copy of s that is sent to the remote: no edit in
// progress and the view reset to the root.
func (s *State) Normalized() *State {
	cp := s.Clone()
	cp.Editing = nil
	cp.View = cp.RootID()
	return cp
}

// Validate checks the tree invariants and that the allocator is ahead of every
// id in use, slots included, so future ids can't collide with existing ones.
func (s *State) Validate() error {
	if err := entry.Check(&s.Root); err != nil {
		return err
	}
	if top := s.Root.MaxID(); top > s.IDs.LatestID {
		return fmt.Errorf("%w: %d > %d", ErrIDBeyondAllocator, top, s.IDs.LatestID)
	}
	if s.AddTask == s.AddFolder {
		return fmt.Errorf("%w: %d", ErrSlotClash, s.AddTask)
	}
	for _, slot := range []entry.ID{s.AddTask, s.AddFolder} {
		if slot > s.IDs.LatestID {
			return fmt.Errorf("%w: slot %d > %d", ErrIDBeyondAllocator, slot, s.IDs.LatestID)
		}
		if s.Root.Find(slot) != nil {
			return fmt.Errorf("%w: %d", ErrSlotInTree, slot)
		}
	}
	return nil
}
