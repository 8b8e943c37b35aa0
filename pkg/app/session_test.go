package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/tasktree/pkg/state"
	"tableflip.dev/tasktree/pkg/store"
	tsync "tableflip.dev/tasktree/pkg/sync"
)

type fakeCache struct {
	stored     *state.State
	restore    *state.State
	restoreErr error
	stores     int
	resets     int
}

func (f *fakeCache) Restore() (*state.State, error) {
	if f.restore != nil {
		return f.restore, f.restoreErr
	}
	return state.New(), f.restoreErr
}

func (f *fakeCache) Store(s *state.State) error {
	f.stored = s.Clone()
	f.stores++
	return nil
}

func (f *fakeCache) Reset() error {
	f.resets++
	return nil
}

func (f *fakeCache) Path() string { return "memory" }

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestApplySaves(t *testing.T) {
	cache := &fakeCache{}
	s, err := Open(cache, nil, quiet())
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	applied, err := s.Apply(state.Command{Kind: state.AddTask, Text: "Buy milk"})
	if err != nil || !applied {
		t.Fatalf("expected add to apply, got %v %v", applied, err)
	}
	if cache.stores != 1 || cache.stored.Root.Find(4) == nil {
		t.Fatalf("expected saved state with task 4, got %d stores", cache.stores)
	}

	applied, err = s.Apply(state.Command{Kind: state.Toggle, ID: 404})
	if err != nil || applied {
		t.Fatalf("expected toggle of a missing id to be a no-op, got %v %v", applied, err)
	}
}

func TestRejectedFinishStillEndsSession(t *testing.T) {
	cache := &fakeCache{}
	s, _ := Open(cache, nil, quiet())
	s.Apply(state.Command{Kind: state.BeginInput, ID: s.State.AddTask})

	applied, err := s.Apply(state.Command{Kind: state.FinishInput, ID: s.State.AddTask})
	if err != nil || applied {
		t.Fatalf("expected empty finish to be rejected, got %v %v", applied, err)
	}
	if cache.stored.Editing != nil {
		t.Fatal("expected the saved state to have no edit in progress")
	}
}

func TestOpenWithCorruptCacheStartsFresh(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	cache := &fakeCache{restoreErr: state.ErrCorruptSnapshot}

	s, err := Open(cache, nil, logger)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if s.State.RootID() != 1 {
		t.Fatal("expected fresh state")
	}
	if !strings.Contains(logs.String(), "starting fresh") {
		t.Fatalf("expected a warning, got %q", logs.String())
	}
}

func TestSyncWithoutRemote(t *testing.T) {
	s, _ := Open(&fakeCache{}, nil, quiet())
	if err := s.Pull(context.Background()); !errors.Is(err, ErrNoRemote) {
		t.Fatalf("expected ErrNoRemote, got %v", err)
	}
	if err := s.Push(context.Background()); !errors.Is(err, ErrNoRemote) {
		t.Fatalf("expected ErrNoRemote, got %v", err)
	}
}

func TestPushPullBetweenSessions(t *testing.T) {
	slot := store.NewSlot(filepath.Join(t.TempDir(), "tasks.db"))
	engine := tsync.New(&tsync.SlotRemote{Slot: slot}, quiet())
	ctx := context.Background()

	first, _ := Open(&fakeCache{}, engine, quiet())
	first.Apply(state.Command{Kind: state.AddFolder, Text: "Work"})
	first.Apply(state.Command{Kind: state.Go, ID: 4})
	if err := first.Push(ctx); err != nil {
		t.Fatalf("push: %v", err)
	}
	if first.State.View != 4 {
		t.Fatal("expected push to leave the local view alone")
	}

	secondCache := &fakeCache{}
	second, _ := Open(secondCache, engine, quiet())
	if err := second.Pull(ctx); err != nil {
		t.Fatalf("pull: %v", err)
	}
	if second.State.Root.Find(4) == nil || second.State.View != 1 {
		t.Fatalf("expected pulled folder with view at root, got view %d", second.State.View)
	}
	if secondCache.stores != 1 {
		t.Fatalf("expected pull to save, got %d stores", secondCache.stores)
	}
}

func TestFailedPullDoesNotSave(t *testing.T) {
	slot := store.NewSlot(filepath.Join(t.TempDir(), "tasks.db"))
	cache := &fakeCache{}
	s, _ := Open(cache, tsync.New(&tsync.SlotRemote{Slot: slot}, quiet()), quiet())

	if err := s.Pull(context.Background()); !errors.Is(err, tsync.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
	if cache.stores != 0 {
		t.Fatal("expected nothing saved")
	}
}

func TestReset(t *testing.T) {
	cache := &fakeCache{}
	s, _ := Open(cache, nil, quiet())
	s.Apply(state.Command{Kind: state.AddTask, Text: "x"})

	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if cache.resets != 1 || len(s.State.Root.Folder.Entries) != 0 {
		t.Fatal("expected a fresh state after reset")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if _, err := NewLogger(&buf, "loud"); err == nil {
		t.Fatal("expected unknown level to fail")
	}
}
