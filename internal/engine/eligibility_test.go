package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmorland/bmadcoach/internal/domain"
)

func TestValidateLessonEligibility_ValidLesson(t *testing.T) {
	project := &domain.ProjectState{CurrentPhase: domain.PhaseDevelopment, TotalStories: 5}
	lesson := &domain.Lesson{
		ID:         "workflow-management",
		Phase:      domain.PhaseGeneral,
		Difficulty: domain.DifficultyIntermediate,
	}

	result := ValidateLessonEligibility(project, lesson, DefaultPolicy())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Reasons)
}

func TestValidateLessonEligibility_NoProject(t *testing.T) {
	lesson := &domain.Lesson{
		ID:                     "project-setup",
		Phase:                  domain.PhaseGeneral,
		RealProjectIntegration: true,
	}

	result := ValidateLessonEligibility(nil, lesson, DefaultPolicy())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Reasons, "This lesson requires an active project")
}

func TestValidateLessonEligibility_AdvancedNeedsStories(t *testing.T) {
	// Advanced lesson against a one-story project: invalid, with the
	// story-count requirement spelled out.
	project := &domain.ProjectState{CurrentPhase: domain.PhaseDevelopment, TotalStories: 1}
	lesson := &domain.Lesson{
		ID:         "deep-dive",
		Phase:      domain.PhaseDevelopment,
		Difficulty: domain.DifficultyAdvanced,
	}

	result := ValidateLessonEligibility(project, lesson, DefaultPolicy())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Requirements, "Add at least 3 stories to your project")
}

func TestValidateLessonEligibility_PhaseMismatch(t *testing.T) {
	project := &domain.ProjectState{CurrentPhase: domain.PhasePlanning, TotalStories: 4}
	lesson := &domain.Lesson{
		ID:         "quality-gates",
		Phase:      domain.PhaseQualityAssurance,
		Difficulty: domain.DifficultyIntermediate,
	}

	result := ValidateLessonEligibility(project, lesson, DefaultPolicy())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Reasons, "This lesson is designed for QualityAssurance phase, but project is in Planning")
	assert.Contains(t, result.Recommendations, "Consider completing this lesson when your project reaches the QualityAssurance phase")
}

func TestValidateLessonEligibility_CollaborationNeedsAgents(t *testing.T) {
	project := &domain.ProjectState{
		CurrentPhase: domain.PhaseDevelopment,
		TotalStories: 5,
		Agents: map[string]domain.AgentStatus{
			"Developer": {Status: domain.AgentActive},
		},
	}
	lesson := &domain.Lesson{
		ID:         "pair-flow",
		Phase:      domain.PhaseGeneral,
		Difficulty: domain.DifficultyIntermediate,
		Tags:       []string{"collaboration"},
	}

	result := ValidateLessonEligibility(project, lesson, DefaultPolicy())

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Requirements, "Ensure multiple agents are active in your project")
}

func TestValidateLessonEligibility_CollectsAllViolations(t *testing.T) {
	// Wrong phase, advanced with too few stories, and collaboration with a
	// one-agent team: all three reasons surface together.
	project := &domain.ProjectState{
		CurrentPhase: domain.PhasePlanning,
		TotalStories: 1,
		Agents: map[string]domain.AgentStatus{
			"Developer": {Status: domain.AgentActive},
		},
	}
	lesson := &domain.Lesson{
		ID:         "everything-wrong",
		Phase:      domain.PhaseQualityAssurance,
		Difficulty: domain.DifficultyAdvanced,
		Tags:       []string{"collaboration"},
	}

	result := ValidateLessonEligibility(project, lesson, DefaultPolicy())

	assert.False(t, result.IsValid)
	assert.Len(t, result.Reasons, 3)
	assert.Len(t, result.Requirements, 2)
}
