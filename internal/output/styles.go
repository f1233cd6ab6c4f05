package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. All ANSI 256 colors used in the CLI live here.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, regions.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen marks written files.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow marks placeholders and skipped regions.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed marks failures.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, paths, regions).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Region status values shown by the template listing.
const (
	StatusPresent  = "present"
	StatusMissing  = "missing"
	StatusOptional = "optional"
)

// StatusStyle returns the style for a region status. Unknown statuses are unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusPresent:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusOptional:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusMissing:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark followed by msg.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return fmt.Sprintf("%s %s", check, msg)
}

// FormatNoun renders s in the noun style.
func FormatNoun(s string) string {
	return StyleNoun.Render(s)
}
