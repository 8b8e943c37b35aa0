// Package entry holds the folder/task tree and the operations that mutate it.
package entry

import "fmt"

// Entry is either a Folder or a Task. Exactly one of the two is set.
type Entry struct {
	Folder *Folder `json:"Folder,omitempty"`
	Task   *Task   `json:"Task,omitempty"`
}

// Folder owns an ordered list of entries. Parent is nil only for the root.
type Folder struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
	Parent  *ID     `json:"parent"`
	ID      ID      `json:"id"`
}

// Task is a leaf with a completion flag.
type Task struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
	ID   ID     `json:"id"`
}

// NewFolder builds a folder entry. A nil parent makes it a root.
func NewFolder(id ID, name string, parent *ID) Entry {
	var p *ID
	if parent != nil {
		v := *parent
		p = &v
	}
	return Entry{Folder: &Folder{Name: name, Entries: []Entry{}, Parent: p, ID: id}}
}

// NewTask builds an open task entry.
func NewTask(id ID, name string) Entry {
	return Entry{Task: &Task{Name: name, ID: id}}
}

func (e *Entry) ID() ID {
	switch {
	case e.Folder != nil:
		return e.Folder.ID
	case e.Task != nil:
		return e.Task.ID
	}
	return 0
}

func (e *Entry) Name() string {
	switch {
	case e.Folder != nil:
		return e.Folder.Name
	case e.Task != nil:
		return e.Task.Name
	}
	return ""
}

func (e *Entry) IsFolder() bool {
	return e.Folder != nil
}

// Clone returns a deep copy that shares nothing with e.
func (e *Entry) Clone() Entry {
	switch {
	case e.Folder != nil:
		f := *e.Folder
		if e.Folder.Parent != nil {
			p := *e.Folder.Parent
			f.Parent = &p
		}
		f.Entries = make([]Entry, len(e.Folder.Entries))
		for i := range e.Folder.Entries {
			f.Entries[i] = e.Folder.Entries[i].Clone()
		}
		return Entry{Folder: &f}
	case e.Task != nil:
		t := *e.Task
		return Entry{Task: &t}
	}
	return Entry{}
}

// IndexOf returns the position of the direct child with the given id, or -1.
func (f *Folder) IndexOf(id ID) int {
	for i := range f.Entries {
		if f.Entries[i].ID() == id {
			return i
		}
	}
	return -1
}

func (e *Entry) String() string {
	switch {
	case e.Folder != nil:
		return fmt.Sprintf("folder %d %q (%d entries)", e.Folder.ID, e.Folder.Name, len(e.Folder.Entries))
	case e.Task != nil:
		done := " "
		if e.Task.Done {
			done = "x"
		}
		return fmt.Sprintf("task %d [%s] %q", e.Task.ID, done, e.Task.Name)
	}
	return "empty entry"
}
