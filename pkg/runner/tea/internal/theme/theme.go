package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header lipgloss.Style
	List   ListTheme
	Footer FooterTheme
}

// ListTheme styles the rows of the folder in view.
type ListTheme struct {
	Cursor   lipgloss.Style
	Folder   lipgloss.Style
	Task     lipgloss.Style
	Done     lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and input lines.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		List: ListTheme{
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Folder:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
			Task:     lipgloss.NewStyle(),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
			Selected: lipgloss.NewStyle().Reverse(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true),
		},
	}
}
