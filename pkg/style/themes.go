package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. AdaptiveColor picks the variant matching the terminal background.
var (
	PrimaryColor = lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#58A6FF"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#212529", Dark: "#F8F9FA"}

	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD54F"}

	// Solus brand blue for package names
	PackageColor = lipgloss.AdaptiveColor{Light: "#5294E2", Dark: "#7FB3F0"}
	VersionColor = lipgloss.AdaptiveColor{Light: "#8B5CF6", Dark: "#A78BFA"}
)
