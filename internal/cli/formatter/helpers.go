package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Header renders a bold section header.
func Header(text string) string {
	return StyleHeader.Render(strings.ToUpper(text))
}

// Bold renders bold foreground text.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Dim renders de-emphasized text.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2)

	if title != "" {
		return boxStyle.Render(Header(title) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatMinutes renders a duration in minutes as "45m" or "1h 15m".
func FormatMinutes(min int) string {
	if min < 60 {
		return fmt.Sprintf("%dm", min)
	}
	if min%60 == 0 {
		return fmt.Sprintf("%dh", min/60)
	}
	return fmt.Sprintf("%dh %dm", min/60, min%60)
}

// BulletList renders items as an indented bullet list.
func BulletList(items []string, style lipgloss.Style) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(fmt.Sprintf("  %s %s\n", style.Render("•"), item))
	}
	return b.String()
}
