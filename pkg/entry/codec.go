package entry

import (
	"encoding/json"
	"fmt"
)

// Entries are encoded as an externally tagged union:
//
//	{"Folder": {"name": "...", "entries": [...], "parent": 1, "id": 2}}
//	{"Task": {"name": "...", "done": false, "id": 3}}

type entryJSON Entry

func (e Entry) MarshalJSON() ([]byte, error) {
	if (e.Folder == nil) == (e.Task == nil) {
		return nil, ErrEmptyEntry
	}
	return json.Marshal(entryJSON(e))
}

// UnmarshalJSON accepts exactly one key, spelled "Folder" or "Task".
func (e *Entry) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("%w: %s", ErrEmptyEntry, truncate(b, 64))
	}
	var out Entry
	var err error
	if v, ok := raw["Folder"]; ok {
		err = json.Unmarshal(v, &out.Folder)
	} else if v, ok := raw["Task"]; ok {
		err = json.Unmarshal(v, &out.Task)
	}
	if err != nil {
		return err
	}
	if out.Folder == nil && out.Task == nil {
		return fmt.Errorf("%w: %s", ErrEmptyEntry, truncate(b, 64))
	}
	*e = out
	return nil
}

type folderJSON Folder

// MarshalJSON always writes entries as a list, never null.
func (f Folder) MarshalJSON() ([]byte, error) {
	if f.Entries == nil {
		f.Entries = []Entry{}
	}
	return json.Marshal(folderJSON(f))
}

func (f *Folder) UnmarshalJSON(b []byte) error {
	var raw folderJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Entries == nil {
		raw.Entries = []Entry{}
	}
	*f = Folder(raw)
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
