package formatter

import (
	"fmt"
	"strings"

	"github.com/jmorland/bmadcoach/internal/domain"
)

// FormatCatalog formats the lesson catalog as a browsable list, marking
// lessons the learner has already completed.
func FormatCatalog(lessons []domain.Lesson, progress *domain.LearnerProgress) string {
	var b strings.Builder

	b.WriteString(Header("Lesson Catalog"))
	b.WriteString("\n")
	for _, lesson := range lessons {
		mark := Dim("○")
		if progress != nil && progress.HasCompleted(lesson.ID) {
			mark = StyleGreen.Render("●")
		}
		phase := string(lesson.Phase)
		if phase == "" {
			phase = "any phase"
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", mark, Bold(lesson.Title), Dim("("+lesson.ID+")")))
		b.WriteString(fmt.Sprintf("    %s · %s · %s",
			StylePurple.Render(string(lesson.Difficulty)),
			StyleBlue.Render(phase),
			FormatMinutes(lesson.EstimatedDuration)))
		if len(lesson.Exercises) > 0 {
			b.WriteString(Dim(fmt.Sprintf(" · %d exercises", len(lesson.Exercises))))
		}
		b.WriteString("\n")
		if len(lesson.Prerequisites) > 0 {
			b.WriteString(Dim(fmt.Sprintf("    requires: %s", strings.Join(lesson.Prerequisites, ", "))))
			b.WriteString("\n")
		}
	}
	return b.String()
}
