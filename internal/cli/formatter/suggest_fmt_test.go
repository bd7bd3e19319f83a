package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/domain"
)

func TestFormatSuggestions_ListsEntriesWithScoresAndReasons(t *testing.T) {
	out := FormatSuggestions([]app.Suggestion{
		{
			Type:           app.SuggestionLesson,
			ID:             "workflow-management",
			Title:          "Workflow Management & Story Lifecycle",
			RelevanceScore: 95,
			Reason:         "Directly relevant to your current Development phase",
			EstimatedTime:  45,
		},
		{
			Type:           app.SuggestionTip,
			ID:             "project-overview",
			Title:          "Understanding Project Dashboards",
			RelevanceScore: 70,
		},
	})

	assert.Contains(t, out, "Workflow Management & Story Lifecycle")
	assert.Contains(t, out, "95/100")
	assert.Contains(t, out, "Directly relevant to your current Development phase")
	assert.Contains(t, out, "[lesson]")
	assert.Contains(t, out, "[tip]")
	assert.Contains(t, out, "45m")
}

func TestFormatSuggestions_EmptyListShowsAllCaughtUp(t *testing.T) {
	out := FormatSuggestions(nil)

	assert.Contains(t, out, "All caught up")
}

func TestFormatProgress_RendersEverySkillAndCompletions(t *testing.T) {
	progress := domain.DefaultProgress()
	progress.SkillLevels[domain.SkillWorkflowManagement] = 85
	progress.CompletedLessons = []string{"bmad-fundamentals"}

	out := FormatProgress(progress, nil)

	for _, skill := range domain.AllSkills {
		assert.Contains(t, out, string(skill))
	}
	assert.Contains(t, out, "bmad-fundamentals")
	assert.Contains(t, out, " 85")
}

func TestFormatMinutes_Breakpoints(t *testing.T) {
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 15m", FormatMinutes(75))
}
