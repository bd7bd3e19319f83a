package formatter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmorland/bmadcoach/internal/app"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreColor returns the style for a 0-100 score: green when healthy,
// yellow when middling, red when poor.
func ScoreColor(score int) lipgloss.Style {
	switch {
	case score >= 70:
		return StyleGreen
	case score >= 40:
		return StyleYellow
	default:
		return StyleRed
	}
}

// ScoreBadge renders a colored "score/100" badge.
func ScoreBadge(score int) string {
	return ScoreColor(score).Render(fmt.Sprintf("%d/100", score))
}

// PriorityBadge renders a colored priority indicator such as "● HIGH".
func PriorityBadge(p app.Priority) string {
	switch p {
	case app.PriorityHigh:
		return StyleRed.Render("● HIGH")
	case app.PriorityMedium:
		return StyleYellow.Render("● MEDIUM")
	case app.PriorityLow:
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// TypeBadge renders a suggestion type tag.
func TypeBadge(t app.SuggestionType) string {
	switch t {
	case app.SuggestionLesson:
		return StyleBlue.Render("[lesson]")
	case app.SuggestionExercise:
		return StyleGreen.Render("[exercise]")
	case app.SuggestionChallenge:
		return StylePurple.Render("[challenge]")
	case app.SuggestionTip:
		return StyleYellow.Render("[tip]")
	default:
		return StyleDim.Render("[?]")
	}
}
