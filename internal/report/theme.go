package report

import (
	"charm.land/lipgloss/v2"
)

// Color palette — clinical, readable on dark terminals
var (
	colorPrimary = lipgloss.Color("#0EA5E9") // Sky Blue
	colorGood    = lipgloss.Color("#22C55E") // Green
	colorMid     = lipgloss.Color("#EAB308") // Amber
	colorPoor    = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorDim)

	styleBody = lipgloss.NewStyle().
			Foreground(colorText)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorDim)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorGood).
			Bold(true)

	styleIncorrect = lipgloss.NewStyle().
			Foreground(colorPoor).
			Bold(true)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	styleSection = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginTop(1)
)

// scoreStyle colors a 0-10 score by band.
func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 8:
		return lipgloss.NewStyle().Foreground(colorGood).Bold(true)
	case score >= 6:
		return lipgloss.NewStyle().Foreground(colorMid)
	default:
		return lipgloss.NewStyle().Foreground(colorPoor)
	}
}
