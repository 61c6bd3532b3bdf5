package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles of the roster screen.
type Styles struct {
	Title    lipgloss.Style
	Zone     lipgloss.Style
	Active   lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Editing  lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")),
		Zone: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Active: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("69")).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
		Selected: lipgloss.NewStyle().
			Reverse(true),
		Editing: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
