package outcome

import "github.com/charmbracelet/lipgloss"

type styles struct {
	frame   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	message lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(success bool) styles {
	border := lipgloss.Color("203")
	if success {
		border = lipgloss.Color("42")
	}

	return styles{
		frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 2),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		message: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginTop(1),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:   lipgloss.NewStyle().Faint(true),
	}
}
