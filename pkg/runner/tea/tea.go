package teaui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/tasktree/pkg/app"
)

var ErrNotTerminal = errors.New("ui: stdin is not a terminal")

// UI runs the terminal interface over a Session.
type UI struct {
	Session *app.Session
}

func (u *UI) Do(ctx context.Context) error {
	if u.Session == nil {
		return errors.New("can not start ui, no session")
	}
	return Run(ctx, u.Session)
}

// Run launches the Bubble Tea UI and blocks until it exits.
func Run(ctx context.Context, session *app.Session) error {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}
	p := tea.NewProgram(New(ctx, session), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
