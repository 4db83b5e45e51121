package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Italic(true)

	PackageStyle = lipgloss.NewStyle().
			Foreground(PackageColor).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(VersionColor)
)

// Line indicators
const (
	SuccessMark = "✓"
	RemoveMark  = "✗"
	PendingMark = "○"
	WarningMark = "!"
)
