package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette: named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: add-on ids, catalog paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "runnable" verdict.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings such as runtime upgrade requirements.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "blocked" verdict and issue kinds.
	ColorRed = lipgloss.Color("196")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (add-on ids, catalog paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleRunnable styles the positive resolution verdict.
	StyleRunnable = lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)

	// StyleBlocked styles the negative resolution verdict and issue kinds.
	StyleBlocked = lipgloss.NewStyle().Bold(true).Foreground(ColorRed)

	// StyleWarning styles runtime upgrade notices.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleDim styles structural chrome (separators, detail labels).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// InstallStateStyle returns the style for an installation state string.
// Unknown states return an unstyled default.
func InstallStateStyle(state string) lipgloss.Style {
	switch state {
	case "installed":
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case "available", "downloading":
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case "uninstallation-failed", "soft-uninstallation-failed":
		return lipgloss.NewStyle().Bold(true).Foreground(ColorRed)
	case "not-installed":
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}
