package edit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string   { return t.path }
func (t testConfig) TasksPath() string  { return "" }
func (t testConfig) RemoteURL() string  { return "" }
func (t testConfig) ListenAddr() string { return "" }
func (t testConfig) LogLevel() string   { return "info" }

// open simulates a fresh invocation against the same cache directory.
func open(t *testing.T, dir string) *app.Session {
	t.Helper()
	cache, err := store.LoadCache(testConfig{path: dir})
	if err != nil {
		t.Fatalf("load cache: %v", err)
	}
	s, err := app.Open(cache, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return s
}

func TestEditSpansInvocations(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	steps := []Edit{
		{Action: Begin, Target: TargetTask},
		{Action: Input, Text: "Buy"},
		{Action: Input, Text: "Buy milk"},
		{Action: Finish},
	}
	for i, step := range steps {
		step.Session = open(t, dir)
		if err := step.Do(ctx); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	s := open(t, dir)
	got := s.State.Root.Find(4)
	if got == nil || got.Name() != "Buy milk" {
		t.Fatalf("expected task 4 named Buy milk, got %v", got)
	}
	if _, editing := s.State.EditTarget(); editing {
		t.Fatal("expected the edit session to be closed")
	}
}

func TestEditCancelAcrossInvocations(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	for _, step := range []Edit{
		{Action: Begin, Target: TargetFolder},
		{Action: Input, Text: "Work"},
		{Action: Cancel},
		{Action: Finish},
	} {
		step.Session = open(t, dir)
		if err := step.Do(ctx); err != nil {
			t.Fatalf("%s: %v", step.Action, err)
		}
	}

	s := open(t, dir)
	if len(s.State.Root.Folder.Entries) != 0 || s.State.IDs.LatestID != 3 {
		t.Fatal("expected nothing committed")
	}
}

func TestEditBeginOnMissingEntry(t *testing.T) {
	e := Edit{Session: open(t, t.TempDir()), Action: Begin, ID: 99}
	if err := e.Do(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown id")
	}
}

func TestEditUnknownAction(t *testing.T) {
	e := Edit{Session: open(t, t.TempDir()), Action: "explode"}
	if err := e.Do(context.Background()); err == nil {
		t.Fatal("expected an error for an unknown action")
	}
}
