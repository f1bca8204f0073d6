package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle is used for the app name in the top bar.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	// ErrorStyle is used for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	prizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	hackathonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	techChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	likedStatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	passedStatStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	likeFlashStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("205")).
			Foreground(lipgloss.Color("0")).
			Bold(true).
			Padding(0, 1)

	passFlashStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("241")).
			Foreground(lipgloss.Color("0")).
			Bold(true).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228")).
			Bold(true)

	cardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)
