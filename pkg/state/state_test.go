package state

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/tasktree/pkg/entry"
)

func TestNewState(t *testing.T) {
	s := New()

	if s.RootID() != 1 || s.AddTask != 2 || s.AddFolder != 3 {
		t.Fatalf("unexpected ids root=%d add_task=%d add_folder=%d", s.RootID(), s.AddTask, s.AddFolder)
	}
	if s.IDs.LatestID != 3 {
		t.Fatalf("expected allocator at 3, got %d", s.IDs.LatestID)
	}
	if s.View != 1 || s.Editing != nil || s.Input != "" {
		t.Fatalf("unexpected ephemeral state %+v", s)
	}
	if s.Root.Name() != RootName || len(s.Root.Folder.Entries) != 0 {
		t.Fatalf("unexpected root %s", s.Root.String())
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestGoBackScenarioE(t *testing.T) {
	s := New()
	s.IDs.LatestID = 6
	if id := mustApply(t, s, Command{Kind: AddFolder, Text: "Work"}); id != 7 {
		t.Fatalf("expected folder 7, got %d", id)
	}

	s.Go(7)
	if s.Current().ID != 7 {
		t.Fatalf("expected view 7, got %d", s.Current().ID)
	}
	if !s.GoBack() {
		t.Fatal("expected go back to apply")
	}
	if s.View != 1 {
		t.Fatalf("expected view 1, got %d", s.View)
	}
	if s.GoBack() {
		t.Fatal("expected go back from the root to fail")
	}
}

func TestGoBackFromTaskOrMissingFails(t *testing.T) {
	s := New()
	mustApply(t, s, Command{Kind: AddTask, Text: "leaf"})

	s.Go(4)
	if s.GoBack() {
		t.Fatal("expected go back from a task to fail")
	}
	s.Go(404)
	if s.GoBack() {
		t.Fatal("expected go back from a missing view to fail")
	}
	if s.View != 404 {
		t.Fatalf("expected view to stay at 404, got %d", s.View)
	}
}

func TestCurrentFallsBackToRootAfterDelete(t *testing.T) {
	s := New()
	mustApply(t, s, Command{Kind: AddFolder, Text: "Work"})
	s.Go(4)

	mustApply(t, s, Command{Kind: Delete, ID: 4})
	if s.View != 4 {
		t.Fatalf("expected cursor to stay on the deleted folder, got %d", s.View)
	}
	if s.Current().ID != s.RootID() {
		t.Fatalf("expected root fallback, got %d", s.Current().ID)
	}
	if got := s.Breadcrumbs(); !reflect.DeepEqual(got, []string{RootName}) {
		t.Fatalf("unexpected breadcrumbs %v", got)
	}
}

func TestBreadcrumbs(t *testing.T) {
	s := New()
	mustApply(t, s, Command{Kind: AddFolder, Text: "Work"})
	s.Go(4)
	mustApply(t, s, Command{Kind: AddFolder, Text: "Q3"})
	s.Go(5)

	want := []string{RootName, "Work", "Q3"}
	if got := s.Breadcrumbs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizedLeavesReceiverAlone(t *testing.T) {
	s := New()
	mustApply(t, s, Command{Kind: AddFolder, Text: "Work"})
	s.Go(4)
	s.BeginInput(s.AddTask)

	n := s.Normalized()
	if n.Editing != nil || n.View != n.RootID() {
		t.Fatalf("expected normalized copy, got editing=%v view=%d", n.Editing, n.View)
	}
	if s.Editing == nil || s.View != 4 {
		t.Fatal("expected receiver state untouched")
	}
	n.Root.Rename(4, "changed")
	if s.Root.Find(4).Name() != "Work" {
		t.Fatal("expected normalized copy to be independent")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := New()
	mustApply(t, s, Command{Kind: AddFolder, Text: "Work"})
	s.Go(4)
	mustApply(t, s, Command{Kind: AddTask, Text: "report"})
	mustApply(t, s, Command{Kind: Toggle, ID: 5})
	s.BeginInput(5)
	s.UpdateInput("quarterly report")

	b, err := Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Unmarshal(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(s, got) {
		t.Fatalf("round trip mismatch\nwant %+v\ngot  %+v", s, got)
	}
}

func TestSnapshotFieldNames(t *testing.T) {
	b, err := Marshal(New())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"root":{"Folder":{"name":"Root folder","entries":[],"parent":null,"id":1}},"view":1,"id":{"latest_id":3},"input":"","add_task":2,"add_folder":3,"editing":null}`
	if string(b) != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, b)
	}
}

func TestUnmarshalRejectsCorruptSnapshots(t *testing.T) {
	cases := map[string]string{
		"not json":        `{"root":`,
		"missing root":    `{"view":1,"id":{"latest_id":3}}`,
		"task root":       `{"root":{"Task":{"name":"x","done":false,"id":1}},"view":1,"id":{"latest_id":3}}`,
		"stale allocator": `{"root":{"Folder":{"name":"r","entries":[{"Task":{"name":"x","done":false,"id":9}}],"parent":null,"id":1}},"view":1,"id":{"latest_id":3},"add_task":2,"add_folder":3}`,
		"slot in tree":    `{"root":{"Folder":{"name":"r","entries":[{"Task":{"name":"x","done":false,"id":2}}],"parent":null,"id":1}},"view":1,"id":{"latest_id":3},"add_task":2,"add_folder":3}`,
		"slot ahead":      `{"root":{"Folder":{"name":"r","entries":[],"parent":null,"id":1}},"view":1,"id":{"latest_id":3},"add_task":5,"add_folder":6}`,
		"shared slot":     `{"root":{"Folder":{"name":"r","entries":[],"parent":null,"id":1}},"view":1,"id":{"latest_id":3},"add_task":2,"add_folder":2}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(in)); !errors.Is(err, ErrCorruptSnapshot) {
				t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
			}
		})
	}
}

func TestInsertedIDsNeverHitSlots(t *testing.T) {
	s, err := Unmarshal([]byte(`{"root":{"Folder":{"name":"r","entries":[],"parent":null,"id":1}},"view":1,"id":{"latest_id":6},"add_task":5,"add_folder":6,"input":"","editing":null}`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s.Apply(Command{Kind: AddTask, Text: "one"})
	s.Apply(Command{Kind: AddTask, Text: "two"})

	b, err := Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Restore(b)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if n := len(back.Root.Folder.Entries); n != 2 {
		t.Fatalf("expected both tasks to survive, got %d", n)
	}
}

func TestRestoreFallsBackToFresh(t *testing.T) {
	s, err := Restore(nil)
	if err != nil || s.RootID() != 1 {
		t.Fatalf("expected fresh state without error, got %v", err)
	}

	s, err = Restore([]byte("garbage"))
	if !errors.Is(err, ErrCorruptSnapshot) {
		t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
	}
	if s == nil || s.RootID() != 1 || len(s.Root.Folder.Entries) != 0 {
		t.Fatal("expected fresh state on corrupt input")
	}
}

func TestCommandStrings(t *testing.T) {
	cases := map[string]Command{
		"back":                 {Kind: GoBack},
		`add-task "milk"`:      {Kind: AddTask, Text: "milk"},
		"move 4 -> 7@2":        {Kind: Move, ID: 4, Dest: 7, Position: 2},
		"toggle 4":             {Kind: Toggle, ID: 4},
		"kind(99) 0":           {Kind: Kind(99)},
		`update-input "draft"`: {Kind: UpdateInput, Text: "draft"},
		"cancel-input":         {Kind: CancelInput},
		"finish-input 2":       {Kind: FinishInput, ID: 2},
	}
	for want, c := range cases {
		if got := c.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
	if !strings.HasPrefix(Kind(42).String(), "kind(") {
		t.Fatal("expected unknown kind to render numerically")
	}
}

// mustApply runs c and returns the id it allocated, if any.
func mustApply(t *testing.T, s *State, c Command) entry.ID {
	t.Helper()
	before := s.IDs.LatestID
	if !s.Apply(c) {
		t.Fatalf("expected %s to apply", c)
	}
	if s.IDs.LatestID != before {
		return s.IDs.LatestID
	}
	return 0
}
