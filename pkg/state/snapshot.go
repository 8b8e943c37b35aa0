package state

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaxSnapshotBytes bounds an encoded snapshot on the wire, in either direction.
const MaxSnapshotBytes = 8 << 20

// ErrCorruptSnapshot is returned when snapshot bytes don't decode into a
// valid state.
var ErrCorruptSnapshot = errors.New("state: corrupt snapshot")

// Marshal encodes s in the snapshot format.
func Marshal(s *State) ([]byte, error) {
	return json.Marshal(s)
}

// Unmarshal decodes and validates a snapshot.
func Unmarshal(b []byte) (*State, error) {
	s := &State{}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return s, nil
}

// Restore decodes a snapshot, falling back to a fresh state when b is empty
// or unusable. The returned error reports why the fallback was taken.
func Restore(b []byte) (*State, error) {
	if len(b) == 0 {
		return New(), nil
	}
	s, err := Unmarshal(b)
	if err != nil {
		return New(), err
	}
	return s, nil
}
