// Package tui provides the Bubble Tea log viewer for the worldmon CLI.
//
// TUI rules:
//   - TUI is opt-in only (--tui flag)
//   - TUI is read-only: it never mutates launcher state or the log files
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	successColor = lipgloss.Color("#10B981") // Green
	errorColor   = lipgloss.Color("#EF4444") // Red
	mutedColor   = lipgloss.Color("#6B7280") // Gray
)

// Styles for TUI components.
var (
	// TitleStyle for the log file header.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// FollowOnStyle marks active follow mode in the status line.
	FollowOnStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// FollowOffStyle marks paused follow mode in the status line.
	FollowOffStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// ErrorStyle for read failures shown inside the viewport.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// HelpStyle for the key help footer.
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
