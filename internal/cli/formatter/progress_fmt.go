package formatter

import (
	"fmt"
	"strings"

	"github.com/jmorland/bmadcoach/internal/domain"
)

// skillBar renders a 20-cell bar for a 0-100 skill level.
func skillBar(level int) string {
	filled := level / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return ScoreColor(level).Render(bar)
}

// FormatProgress formats the learner's mastery record and recent
// observations.
func FormatProgress(progress *domain.LearnerProgress, recent []*domain.Observation) string {
	var b strings.Builder

	b.WriteString(Header("Skill Levels"))
	b.WriteString("\n")
	for _, skill := range domain.AllSkills {
		level := progress.SkillLevel(skill)
		b.WriteString(fmt.Sprintf("  %-22s %s %s\n",
			string(skill), skillBar(level), ScoreColor(level).Render(fmt.Sprintf("%3d", level))))
	}
	b.WriteString(fmt.Sprintf("\n  Mastery: %s\n", StylePurple.Render(string(progress.MasteryLevel()))))

	b.WriteString("\n")
	b.WriteString(Header("Completed Lessons"))
	b.WriteString("\n")
	if len(progress.CompletedLessons) == 0 {
		b.WriteString(Dim("  none yet"))
		b.WriteString("\n")
	} else {
		b.WriteString(BulletList(progress.CompletedLessons, StyleGreen))
	}

	if len(progress.Achievements) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Achievements"))
		b.WriteString("\n")
		b.WriteString(BulletList(progress.Achievements, StyleYellow))
	}

	if len(recent) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recent Activity"))
		b.WriteString("\n")
		for _, obs := range recent {
			outcome := outcomeBadge(obs.Outcome)
			b.WriteString(fmt.Sprintf("  %s %s %s  %s\n",
				Dim(obs.ObservedAt.Format("2006-01-02")),
				outcome,
				Bold(obs.LessonID),
				Dim(obs.ProjectID)))
		}
	}

	return b.String()
}

func outcomeBadge(o domain.LearningOutcome) string {
	switch o {
	case domain.OutcomeSuccess:
		return StyleGreen.Render("success")
	case domain.OutcomePartial:
		return StyleYellow.Render("partial")
	case domain.OutcomeFailed:
		return StyleRed.Render("failed ")
	default:
		return StyleDim.Render(string(o))
	}
}
