package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: paths, directory names.
	ColorCyan = lipgloss.Color("14")

	// colorGreen is used for the "created" status.
	colorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" status.
	ColorYellow = lipgloss.Color("220")

	// colorBoldRed is used for the "failed" status (matches ERROR level).
	colorBoldRed = lipgloss.Color("204")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, directory names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (scope prefixes, descriptions).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Entry status values.
const (
	StatusCreated = "created"
	StatusExists  = "exists"
	StatusSkipped = "skipped"
	statusFailed  = "failed"
)

// StatusFailed is exported for callers that report failed writes.
const StatusFailed = statusFailed

// statusStyle returns the lipgloss style for a given status string.
// Unknown statuses return an unstyled default.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusExists:
		return lipgloss.NewStyle().Faint(true)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 48

// FormatEntryLine renders a path with a right-aligned, color-coded status suffix.
//
// Format: f:<path>  <status>   (d: for directories)
func FormatEntryLine(path string, isDir bool, status string) string {
	kind := "f:"
	if isDir {
		kind = "d:"
	}

	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render(kind) + StyleNoun.Render(path) +
		strings.Repeat(" ", padding) + statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}
