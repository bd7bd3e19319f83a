package engine

import (
	"fmt"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// SynthesizeExercises builds project-specific practice exercises
// parameterized by live project context. Each exercise embeds the context
// values it was built from, so the text and its originating data stay
// auditable.
func SynthesizeExercises(project *domain.ProjectState) []app.PracticalExercise {
	var exercises []app.PracticalExercise

	switch project.CurrentPhase {
	case domain.PhaseDevelopment:
		if project.ActiveStory != "" {
			exercises = append(exercises, app.PracticalExercise{
				ID:              "active-story-optimization",
				Title:           "Optimize Active Story Development",
				Description:     fmt.Sprintf("Apply BMAD best practices to your current active story: %s", project.ActiveStory),
				Difficulty:      domain.DifficultyIntermediate,
				EstimatedTime:   25,
				ProjectRequired: true,
				Skills:          []domain.Skill{domain.SkillWorkflowManagement, domain.SkillAgentCoordination},
				Context: app.ExerciseContext{
					Story: project.ActiveStory,
					Phase: project.CurrentPhase,
				},
			})
		}

	case domain.PhaseQualityAssurance:
		exercises = append(exercises, app.PracticalExercise{
			ID:              "quality-gate-review",
			Title:           "Implement Quality Gates",
			Description:     fmt.Sprintf("Set up and test quality gates for your project (%d of %d stories complete)", project.CompletedStories, project.TotalStories),
			Difficulty:      domain.DifficultyAdvanced,
			EstimatedTime:   35,
			ProjectRequired: true,
			Skills:          []domain.Skill{domain.SkillQualityAssurance, domain.SkillProcessOptimization},
			Context: app.ExerciseContext{
				Phase:            project.CurrentPhase,
				CompletedStories: project.CompletedStories,
				TotalStories:     project.TotalStories,
			},
		})
	}

	return exercises
}

// SynthesizeChallenge builds the active-story challenge suggestion when
// the project is mid-development with a story in flight. Returns nil
// otherwise.
func SynthesizeChallenge(project *domain.ProjectState) *app.Suggestion {
	if project.CurrentPhase != domain.PhaseDevelopment || project.ActiveStory == "" {
		return nil
	}
	return &app.Suggestion{
		Type:            app.SuggestionChallenge,
		ID:              "active-story-challenge",
		Title:           "Active Story Development Challenge",
		Description:     fmt.Sprintf("Apply BMAD development practices to your current story: %s", project.ActiveStory),
		RelevanceScore:  95,
		Reason:          "You have an active story in development",
		EstimatedTime:   30,
		Difficulty:      domain.DifficultyIntermediate,
		Phase:           domain.PhaseDevelopment,
		Prerequisites:   []string{"project-setup"},
		ProjectSpecific: true,
	}
}
