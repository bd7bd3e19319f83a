package formatter

import (
	"fmt"
	"strings"

	"github.com/jmorland/bmadcoach/internal/app"
)

// FormatSuggestions formats a ranked suggestion list.
func FormatSuggestions(suggestions []app.Suggestion) string {
	var b strings.Builder

	b.WriteString(Header("Learning Suggestions"))
	b.WriteString("\n")
	if len(suggestions) == 0 {
		b.WriteString(Dim("  All caught up! Nothing new for this project right now."))
		b.WriteString("\n")
		return b.String()
	}

	for i, s := range suggestions {
		line := fmt.Sprintf("  %s %s %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			TypeBadge(s.Type),
			StyleFg.Render(s.Title),
			ScoreBadge(s.RelevanceScore))
		if s.EstimatedTime > 0 {
			line += "  " + StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(s.EstimatedTime)))
		}
		b.WriteString(line + "\n")
		if s.Reason != "" {
			b.WriteString(fmt.Sprintf("     %s\n", Dim(s.Reason)))
		}
	}
	return b.String()
}
