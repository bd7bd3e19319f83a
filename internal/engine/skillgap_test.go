package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/domain"
)

func TestRecommendSkillGaps_LowReadiness(t *testing.T) {
	learner := domain.DefaultProgress()
	learner.SkillLevels[domain.SkillWorkflowManagement] = 40

	recs := RecommendSkillGaps(
		app.PhaseReadinessAssessment{ReadinessScore: 30},
		app.TeamEfficiencyMetrics{},
		learner,
		DefaultPolicy(),
	)

	require.Len(t, recs, 1)
	assert.Equal(t, domain.SkillWorkflowManagement, recs[0].Skill)
	assert.Equal(t, 40, recs[0].CurrentLevel)
	assert.Equal(t, 75, recs[0].TargetLevel)
	assert.Equal(t, app.PriorityHigh, recs[0].Priority)
	assert.NotEmpty(t, recs[0].SuggestedActions)
}

func TestRecommendSkillGaps_BlockedAgents(t *testing.T) {
	recs := RecommendSkillGaps(
		app.PhaseReadinessAssessment{ReadinessScore: 85},
		app.TeamEfficiencyMetrics{BlockedAgents: 2},
		domain.DefaultProgress(),
		DefaultPolicy(),
	)

	require.Len(t, recs, 1)
	assert.Equal(t, domain.SkillAgentCoordination, recs[0].Skill)
	assert.Equal(t, 0, recs[0].CurrentLevel, "absent skill defaults to level 0")
	assert.Equal(t, 80, recs[0].TargetLevel)
}

func TestRecommendSkillGaps_TriggersAreAdditive(t *testing.T) {
	recs := RecommendSkillGaps(
		app.PhaseReadinessAssessment{ReadinessScore: 30},
		app.TeamEfficiencyMetrics{BlockedAgents: 1},
		domain.DefaultProgress(),
		DefaultPolicy(),
	)

	require.Len(t, recs, 2, "independent triggers each emit, no suppression")
}

func TestRecommendSkillGaps_NothingFires(t *testing.T) {
	recs := RecommendSkillGaps(
		app.PhaseReadinessAssessment{ReadinessScore: 90},
		app.TeamEfficiencyMetrics{},
		domain.DefaultProgress(),
		DefaultPolicy(),
	)

	assert.Empty(t, recs)
}
