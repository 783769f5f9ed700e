package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	// Spam and safe mirror the red/green of the original status indicator
	spamStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	safeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#44ff44"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5555"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	userTurnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	botTurnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")).
			Width(12)

	barFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	barEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)
