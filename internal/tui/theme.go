package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	StepOK      lipgloss.Style
	StepFailed  lipgloss.Style
	StepSkipped lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		StepOK:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StepFailed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		StepSkipped: lipgloss.NewStyle().Faint(true),
	}
}
