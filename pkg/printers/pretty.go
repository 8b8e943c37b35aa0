package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/glyph"
	"tableflip.dev/tasktree/pkg/state"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// State prints where the view is, the entries of the view folder and the
// edit in progress, if any.
func (pp *PrettyPrint) State(s *state.State) {
	pp.Breadcrumbs(s.Breadcrumbs())
	pp.Folder(s.Current())
	pp.Editing(s)
}

func (pp *PrettyPrint) Breadcrumbs(crumbs []string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(pp.out(), t.Sprint(strings.Join(crumbs, " / ")))
}

func (pp *PrettyPrint) Folder(f *entry.Folder) {
	w := pp.out()
	if len(f.Entries) == 0 {
		c := color.New(color.Faint, color.Italic)
		_, _ = fmt.Fprint(w, c.Sprint(" empty\n\n"))
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for i := range f.Entries {
		tbl.AddRow(pp.row(&f.Entries[i], 0)...)
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, countLine(len(f.Entries)))
}

// Tree prints every entry below root, indented by depth.
func (pp *PrettyPrint) Tree(root *entry.Entry) {
	w := pp.out()
	t := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(w, t.Sprint(root.Name()))

	tbl := uitable.New()
	tbl.Separator = "  "
	rows := 0
	root.Walk(func(e *entry.Entry, depth int) bool {
		if depth == 0 {
			return true
		}
		tbl.AddRow(pp.row(e, depth-1)...)
		rows++
		return true
	})
	if rows == 0 {
		c := color.New(color.Faint, color.Italic)
		_, _ = fmt.Fprint(w, c.Sprint(" empty\n\n"))
		return
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, countLine(rows))
}

// Editing prints the pending input when an edit session is open.
func (pp *PrettyPrint) Editing(s *state.State) {
	id, ok := s.EditTarget()
	if !ok {
		return
	}
	var target string
	switch id {
	case s.AddTask:
		target = "new task"
	case s.AddFolder:
		target = "new folder"
	default:
		target = fmt.Sprintf("rename %d", id)
		if e := s.Root.Find(id); e != nil {
			target = fmt.Sprintf("rename %q", e.Name())
		}
	}
	y := color.New(color.FgHiYellow)
	_, _ = fmt.Fprintf(pp.out(), "%s %s\n", y.Sprintf("editing %s:", target), s.Input)
}

// Unchanged reports a command that had no effect.
func (pp *PrettyPrint) Unchanged() {
	c := color.New(color.Faint)
	_, _ = fmt.Fprintln(pp.out(), c.Sprint("nothing changed"))
}

func (pp *PrettyPrint) row(e *entry.Entry, depth int) []interface{} {
	indent := strings.Repeat("  ", depth)
	m := glyph.For(e)
	marker, name := m.String(), e.Name()
	switch m {
	case glyph.Folder:
		marker = color.New(color.FgCyan).Sprint(marker)
		name = color.New(color.Bold).Sprint(name + "/")
	case glyph.Done:
		name = color.New(color.Faint, color.CrossedOut).Sprint(name)
	}
	if pp.ShowID {
		id := color.New(color.FgHiYellow, color.Italic, color.Faint).Sprint(e.ID())
		return []interface{}{id, indent + marker, name}
	}
	return []interface{}{indent + marker, name}
}

func countLine(n int) string {
	c := color.New(color.Faint)
	if n == 1 {
		return c.Sprint("1 entry\n")
	}
	return c.Sprintf("%d entries\n", n)
}

// Outcome prints the state after a command, prefixed by a notice when the
// command had no effect.
func (pp *PrettyPrint) Outcome(applied bool, s *state.State) {
	if !applied {
		pp.Unchanged()
	}
	_, _ = fmt.Fprintln(pp.out())
	pp.State(s)
}
