package formatter

import (
	"fmt"
	"strings"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// FormatValidation formats an eligibility check for one lesson.
func FormatValidation(lesson *domain.Lesson, result *app.ValidationResult) string {
	var b strings.Builder

	b.WriteString(Header("Lesson Eligibility"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Bold(lesson.Title), Dim("("+lesson.ID+")")))

	if result.IsValid {
		b.WriteString(fmt.Sprintf("  %s\n", StyleGreen.Render("✓ ready to start")))
	} else {
		b.WriteString(fmt.Sprintf("  %s\n", StyleRed.Render("✗ not eligible yet")))
	}

	if len(result.Reasons) > 0 {
		b.WriteString("\n")
		b.WriteString(BulletList(result.Reasons, StyleRed))
	}
	if len(result.Requirements) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("  To become eligible:"))
		b.WriteString("\n")
		b.WriteString(BulletList(result.Requirements, StyleYellow))
	}
	if len(result.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(BulletList(result.Recommendations, StyleBlue))
	}
	return b.String()
}
