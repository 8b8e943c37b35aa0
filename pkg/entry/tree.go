package entry

import "slices"

// Find walks the tree depth-first, checking each folder before its children,
// and returns the entry with the given id or nil. The returned pointer aliases
// the tree; it is only valid until the next structural change.
func (e *Entry) Find(id ID) *Entry {
	if e.Folder == nil && e.Task == nil {
		return nil
	}
	if e.ID() == id {
		return e
	}
	if e.Folder == nil {
		return nil
	}
	for i := range e.Folder.Entries {
		if found := e.Folder.Entries[i].Find(id); found != nil {
			return found
		}
	}
	return nil
}

// FindFolder is Find restricted to folders.
func (e *Entry) FindFolder(id ID) *Folder {
	if found := e.Find(id); found != nil {
		return found.Folder
	}
	return nil
}

// Walk calls fn for e and every descendant in display order. Returning false
// from fn stops the walk.
func (e *Entry) Walk(fn func(e *Entry, depth int) bool) {
	e.walk(fn, 0)
}

func (e *Entry) walk(fn func(e *Entry, depth int) bool, depth int) bool {
	if !fn(e, depth) {
		return false
	}
	if e.Folder == nil {
		return true
	}
	for i := range e.Folder.Entries {
		if !e.Folder.Entries[i].walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// Count returns the number of entries in the subtree rooted at e, e included.
func (e *Entry) Count() int {
	n := 0
	e.Walk(func(*Entry, int) bool {
		n++
		return true
	})
	return n
}

// Path returns the ids from e down to id, both ends included, or nil when id
// is not in the tree.
func (e *Entry) Path(id ID) []ID {
	if e.Folder == nil && e.Task == nil {
		return nil
	}
	if e.ID() == id {
		return []ID{id}
	}
	if e.Folder == nil {
		return nil
	}
	for i := range e.Folder.Entries {
		if rest := e.Folder.Entries[i].Path(id); rest != nil {
			return append([]ID{e.ID()}, rest...)
		}
	}
	return nil
}

// Delete removes the entry with the given id and its whole subtree. The root
// itself can't be deleted. Reports whether anything was removed.
func (e *Entry) Delete(id ID) bool {
	if e.Folder == nil || e.ID() == id {
		return false
	}
	_, ok := e.Folder.remove(id)
	return ok
}

func (f *Folder) remove(id ID) (Entry, bool) {
	for i := range f.Entries {
		if f.Entries[i].ID() == id {
			removed := f.Entries[i]
			f.Entries = slices.Delete(f.Entries, i, i+1)
			return removed, true
		}
		if sub := f.Entries[i].Folder; sub != nil {
			if removed, ok := sub.remove(id); ok {
				return removed, true
			}
		}
	}
	return Entry{}, false
}

// Move relocates itemID into destID's entries at position. The entry is
// detached by id, so identical-looking siblings are never confused. It is not
// performed when the item is missing or is the root, when destID is not a
// folder, or when destID lies inside the item's own subtree. Position is
// clamped to the destination's bounds after the item has been detached.
func (e *Entry) Move(destID, itemID ID, position int) bool {
	if e.Folder == nil || itemID == e.ID() {
		return false
	}
	item := e.Find(itemID)
	if item == nil {
		return false
	}
	if item.Find(destID) != nil {
		return false
	}
	dest := e.FindFolder(destID)
	if dest == nil {
		return false
	}

	moved, ok := e.Folder.remove(itemID)
	if !ok {
		return false
	}
	if moved.Folder != nil {
		parent := destID
		moved.Folder.Parent = &parent
	}
	position = max(0, min(position, len(dest.Entries)))
	dest.Entries = slices.Insert(dest.Entries, position, moved)
	return true
}

// MoveUp moves itemID one slot earlier within folderID, wrapping from the
// first slot to the last.
func (e *Entry) MoveUp(folderID, itemID ID) bool {
	return e.shift(folderID, itemID, -1)
}

// MoveDown moves itemID one slot later within folderID, wrapping from the
// last slot to the first.
func (e *Entry) MoveDown(folderID, itemID ID) bool {
	return e.shift(folderID, itemID, 1)
}

func (e *Entry) shift(folderID, itemID ID, delta int) bool {
	folder := e.FindFolder(folderID)
	if folder == nil {
		return false
	}
	idx := folder.IndexOf(itemID)
	if idx < 0 {
		return false
	}
	n := len(folder.Entries)
	return e.Move(folderID, itemID, (idx+delta+n)%n)
}

// Toggle flips the done flag of a task. Folders can't be toggled.
func (e *Entry) Toggle(id ID) bool {
	found := e.Find(id)
	if found == nil || found.Task == nil {
		return false
	}
	found.Task.Done = !found.Task.Done
	return true
}

// Rename sets the name of the entry with the given id. Empty names are ignored.
func (e *Entry) Rename(id ID, name string) bool {
	if name == "" {
		return false
	}
	found := e.Find(id)
	switch {
	case found == nil:
		return false
	case found.Folder != nil:
		found.Folder.Name = name
	case found.Task != nil:
		found.Task.Name = name
	default:
		return false
	}
	return true
}

// InsertTask appends a new task to parentID. An id is only drawn from ids
// when the insert actually happens.
func (e *Entry) InsertTask(parentID ID, name string, ids *IDAllocator) (ID, bool) {
	parent := e.FindFolder(parentID)
	if parent == nil || name == "" {
		return 0, false
	}
	id := ids.Next()
	parent.Entries = append(parent.Entries, NewTask(id, name))
	return id, true
}

// InsertFolder appends a new, empty folder to parentID. An id is only drawn
// from ids when the insert actually happens.
func (e *Entry) InsertFolder(parentID ID, name string, ids *IDAllocator) (ID, bool) {
	parent := e.FindFolder(parentID)
	if parent == nil || name == "" {
		return 0, false
	}
	id := ids.Next()
	parent.Entries = append(parent.Entries, NewFolder(id, name, &parent.ID))
	return id, true
}
