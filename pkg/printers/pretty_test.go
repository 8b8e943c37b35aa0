package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/tasktree/pkg/state"
)

func init() {
	color.NoColor = true
}

func sample() *state.State {
	s := state.New()
	s.Apply(state.Command{Kind: state.AddFolder, Text: "Work"})
	s.Apply(state.Command{Kind: state.AddTask, Text: "Buy milk"})
	s.Apply(state.Command{Kind: state.Toggle, ID: 5})
	s.Go(4)
	s.Apply(state.Command{Kind: state.AddTask, Text: "report"})
	return s
}

func TestStateShowsViewFolder(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.State(sample())

	out := buf.String()
	if !strings.Contains(out, "Root folder / Work") {
		t.Fatalf("expected breadcrumbs, got:\n%s", out)
	}
	if !strings.Contains(out, "[ ]") || !strings.Contains(out, "report") {
		t.Fatalf("expected the view's task, got:\n%s", out)
	}
	if strings.Contains(out, "Buy milk") {
		t.Fatalf("expected only the view folder, got:\n%s", out)
	}
	if !strings.Contains(out, "1 entry") {
		t.Fatalf("expected count, got:\n%s", out)
	}
}

func TestTreeShowsEverything(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowID: true}
	s := sample()
	pp.Tree(&s.Root)

	out := buf.String()
	for _, want := range []string{"Work/", "[x]", "Buy milk", "report", "3 entries"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "Work/") > strings.Index(out, "report") {
		t.Fatalf("expected folder before its children:\n%s", out)
	}
}

func TestEmptyFolder(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.State(state.New())
	if !strings.Contains(buf.String(), "empty") {
		t.Fatalf("expected empty notice, got:\n%s", buf.String())
	}
}

func TestEditingLine(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	s := sample()

	pp.Editing(s)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing while idle, got %q", buf.String())
	}

	s.BeginInput(4)
	s.UpdateInput("Work stuff")
	pp.Editing(s)
	if got := buf.String(); !strings.Contains(got, `editing rename "Work": Work stuff`) {
		t.Fatalf("unexpected editing line %q", got)
	}

	buf.Reset()
	s.BeginInput(s.AddFolder)
	pp.Editing(s)
	if !strings.Contains(buf.String(), "editing new folder:") {
		t.Fatalf("unexpected editing line %q", buf.String())
	}
}
