package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = "12"
	colorMuted   = "240"
	colorError   = "9"
	colorActive  = "10"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)).
			MarginBottom(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorMuted)).
			Padding(0, 1).
			Width(44)

	focusedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color(colorPrimary))

	dropPanelStyle = panelStyle.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(colorActive))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorActive)).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorError))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))
)
