package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles used by the editor view.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Help        lipgloss.Style
	Cell        lipgloss.Style
	Placeholder lipgloss.Style
	Selected    lipgloss.Style
	Menu        lipgloss.Style
	MenuItem    lipgloss.Style
	MenuActive  lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
}

// DefaultTheme returns the editor's default styles.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("236")),
		Subtitle:    lipgloss.NewStyle().Faint(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Cell:        lipgloss.NewStyle().Padding(0, 1),
		Placeholder: lipgloss.NewStyle().Padding(0, 1).Faint(true),
		Selected:    lipgloss.NewStyle().Padding(0, 1).Reverse(true),
		Menu: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")),
		MenuItem:   lipgloss.NewStyle(),
		MenuActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("35")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
}
