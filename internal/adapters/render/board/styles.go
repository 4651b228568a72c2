package board

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	worker     lipgloss.Style
	owner      lipgloss.Style
	detail     lipgloss.Style
	idle       lipgloss.Style
	onShift    lipgloss.Style
	onBreak    lipgloss.Style
	pending    lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		worker:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		owner:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		detail:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		idle:       lipgloss.NewStyle().Faint(true),
		onShift:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		onBreak:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		pending:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
