package teaui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/tasktree/pkg/app"
	"tableflip.dev/tasktree/pkg/entry"
	"tableflip.dev/tasktree/pkg/glyph"
	"tableflip.dev/tasktree/pkg/runner/tea/internal/theme"
	"tableflip.dev/tasktree/pkg/state"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

// Binding is a key in normal mode. Short is what the help line shows; an
// empty Short leaves the binding out of it.
type Binding struct {
	Keys    string
	Short   string
	Meaning string
}

var Bindings = []Binding{
	{Keys: "j/k", Short: "move", Meaning: "move the cursor down or up"},
	{Keys: "g/G", Meaning: "jump to the first or last entry"},
	{Keys: "enter", Short: "open/toggle", Meaning: "open a folder or toggle a task"},
	{Keys: "⌫", Short: "back", Meaning: "go to the parent folder"},
	{Keys: "space", Meaning: "toggle a task"},
	{Keys: "a", Short: "task", Meaning: "add a task to the folder in view"},
	{Keys: "f", Short: "folder", Meaning: "add a folder to the folder in view"},
	{Keys: "r", Short: "rename", Meaning: "rename the selected entry"},
	{Keys: "d", Short: "delete", Meaning: "delete the selected entry"},
	{Keys: "K/J", Short: "reorder", Meaning: "move the selected entry up or down"},
	{Keys: "p", Short: "pull", Meaning: "replace local state with the remote snapshot"},
	{Keys: "P", Short: "push", Meaning: "replace the remote snapshot with local state"},
	{Keys: "q", Short: "quit", Meaning: "quit"},
}

var helpLine = func() string {
	parts := make([]string, 0, len(Bindings))
	for _, b := range Bindings {
		if b.Short != "" {
			parts = append(parts, b.Keys+" "+b.Short)
		}
	}
	return strings.Join(parts, "  ")
}()

// Model is the Bubble Tea model over a Session. Every change goes through
// Session.Apply, so the cache is current after each key press.
type Model struct {
	session *app.Session
	ctx     context.Context
	mode    mode

	cursor int
	input  textinput.Model

	status string
	err    error

	termWidth  int
	termHeight int

	theme    theme.Theme
	quitting bool
}

// New creates a UI model. An edit session restored from the cache is resumed.
func New(ctx context.Context, session *app.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""

	m := Model{
		session: session,
		ctx:     ctx,
		mode:    modeNormal,
		input:   ti,
		theme:   theme.Default(),
	}
	if _, editing := session.State.EditTarget(); editing {
		m.mode = modeInput
		m.input.SetValue(session.State.Input)
		m.input.CursorEnd()
		m.input.Focus()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.mode == modeInput {
		return textinput.Blink
	}
	return nil
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeInput {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}

	if m.mode == modeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.session.State
	sel := m.selected()
	m.status = ""

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.entries())-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(0, len(m.entries())-1)
	case "enter", "l", "right":
		if sel == nil {
			break
		}
		if sel.Folder != nil {
			m.apply(state.Command{Kind: state.Go, ID: sel.ID()})
			m.cursor = 0
		} else {
			m.apply(state.Command{Kind: state.Toggle, ID: sel.ID()})
		}
	case "backspace", "h", "left":
		from := st.Current().ID
		if m.apply(state.Command{Kind: state.GoBack}) {
			m.cursor = max(0, st.Current().IndexOf(from))
		} else {
			m.status = "already at the top"
		}
	case " ", "x":
		if sel != nil && !m.apply(state.Command{Kind: state.Toggle, ID: sel.ID()}) {
			m.status = "folders can't be toggled"
		}
	case "a":
		return m, m.beginInput(st.AddTask)
	case "f":
		return m, m.beginInput(st.AddFolder)
	case "r":
		if sel != nil {
			return m, m.beginInput(sel.ID())
		}
	case "d":
		if sel != nil {
			name := sel.Name()
			if m.apply(state.Command{Kind: state.Delete, ID: sel.ID()}) {
				m.status = fmt.Sprintf("deleted %q", name)
			}
		}
	case "K", "J":
		if sel == nil {
			break
		}
		id := sel.ID()
		kind := state.MoveUp
		if msg.String() == "J" {
			kind = state.MoveDown
		}
		if m.apply(state.Command{Kind: kind, ID: id}) {
			m.cursor = st.Current().IndexOf(id)
		}
	case "p":
		if err := m.session.Pull(m.ctx); err != nil {
			m.err = err
			break
		}
		m.err = nil
		m.cursor = 0
		m.status = "pulled"
	case "P":
		if err := m.session.Push(m.ctx); err != nil {
			m.err = err
			break
		}
		m.err = nil
		m.status = "pushed"
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.session.State
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.apply(state.Command{Kind: state.CancelInput})
		m.endInput()
		return m, nil
	case tea.KeyEnter:
		id, _ := st.EditTarget()
		added := id == st.AddTask || id == st.AddFolder
		if m.apply(state.Command{Kind: state.FinishInput, ID: id}) {
			if added {
				m.cursor = len(m.entries()) - 1
			}
		} else {
			m.status = "nothing changed"
		}
		m.endInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != st.Input {
		m.apply(state.Command{Kind: state.UpdateInput, Text: v})
	}
	return m, cmd
}

func (m *Model) beginInput(id entry.ID) tea.Cmd {
	m.apply(state.Command{Kind: state.BeginInput, ID: id})
	m.mode = modeInput
	m.input.SetValue(m.session.State.Input)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) endInput() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.Reset()
}

// apply runs c through the session, keeping the cursor in range and
// surfacing save failures.
func (m *Model) apply(c state.Command) bool {
	applied, err := m.session.Apply(c)
	m.err = err
	if n := len(m.entries()); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	return applied
}

func (m Model) entries() []entry.Entry {
	return m.session.State.Current().Entries
}

func (m Model) selected() *entry.Entry {
	entries := m.entries()
	if m.cursor < 0 || m.cursor >= len(entries) {
		return nil
	}
	return &entries[m.cursor]
}

func (m Model) nameWidth() int {
	if m.termWidth == 0 {
		return 60
	}
	return max(10, m.termWidth-8)
}

func (m Model) inputLabel() string {
	st := m.session.State
	id, _ := st.EditTarget()
	switch id {
	case st.AddTask:
		return "new task"
	case st.AddFolder:
		return "new folder"
	}
	return "rename"
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st := m.session.State
	th := m.theme
	var b strings.Builder

	b.WriteString(th.Header.Render(strings.Join(st.Breadcrumbs(), " / ")))
	b.WriteString("\n\n")

	entries := m.entries()
	if len(entries) == 0 {
		b.WriteString(th.List.Empty.Render("  empty"))
		b.WriteString("\n")
	}
	width := uint(m.nameWidth())
	for i := range entries {
		e := &entries[i]
		name := truncate.StringWithTail(e.Name(), width, "…")
		g := glyph.For(e)
		marker := g.String()
		switch g {
		case glyph.Folder:
			marker = th.List.Folder.Render(marker)
			name = th.List.Folder.Render(name)
		case glyph.Done:
			name = th.List.Done.Render(name)
		default:
			name = th.List.Task.Render(name)
		}
		if i == m.cursor {
			b.WriteString(th.List.Cursor.Render("› "))
		} else {
			b.WriteString("  ")
		}
		b.WriteString(marker + " " + name + "\n")
	}
	b.WriteString("\n")

	if m.mode == modeInput {
		b.WriteString(th.Footer.Prompt.Render(m.inputLabel()+": ") + m.input.View() + "\n")
	}
	switch {
	case m.err != nil:
		b.WriteString(th.Footer.Error.Render(m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(th.Footer.Status.Render(m.status) + "\n")
	}
	b.WriteString(th.Footer.Help.Render(helpLine))
	return b.String()
}
