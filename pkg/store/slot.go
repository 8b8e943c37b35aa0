package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"tableflip.dev/tasktree/pkg/state"
)

// ErrNoSnapshot is returned by Slot.Read before anything has been written.
var ErrNoSnapshot = errors.New("store: no snapshot")

// Slot is the single snapshot file the server keeps as the remote authority.
// Every write replaces the whole file.
type Slot struct {
	mu   sync.Mutex
	path string
}

// NewSlot returns a slot backed by path. The file is created on first Write.
func NewSlot(path string) *Slot {
	return &Slot{path: filepath.Clean(path)}
}

func (s *Slot) Path() string {
	return s.path
}

// ReadRaw returns the stored bytes without decoding them.
func (s *Slot) ReadRaw() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("store: read snapshot: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoSnapshot
	}
	return data, nil
}

// Read decodes the stored snapshot.
func (s *Slot) Read() (*state.State, error) {
	data, err := s.ReadRaw()
	if err != nil {
		return nil, err
	}
	return state.Unmarshal(data)
}

// Write replaces the stored snapshot. The new content is written beside the
// slot and renamed over it, so readers never observe a partial file.
func (s *Slot) Write(st *state.State) error {
	data, err := state.Marshal(st)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: ensure snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: replace snapshot: %w", err)
	}
	return nil
}
