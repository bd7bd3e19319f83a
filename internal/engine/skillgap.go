package engine

import (
	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// RecommendSkillGaps diagnoses skill gaps from the assessment results.
// Triggers are additive: each condition that fires emits its own
// recommendation, with no suppression between them.
func RecommendSkillGaps(
	readiness app.PhaseReadinessAssessment,
	efficiency app.TeamEfficiencyMetrics,
	learner *domain.LearnerProgress,
	pol Policy,
) []app.SkillRecommendation {
	var recs []app.SkillRecommendation

	if readiness.ReadinessScore < pol.ReadinessGapThreshold {
		recs = append(recs, app.SkillRecommendation{
			Skill:        domain.SkillWorkflowManagement,
			CurrentLevel: learner.SkillLevel(domain.SkillWorkflowManagement),
			TargetLevel:  pol.WorkflowTargetLevel,
			Priority:     app.PriorityHigh,
			Reason:       "Phase transition challenges detected",
			SuggestedActions: []string{
				"Complete workflow management lesson",
				"Practice phase transitions in your project",
				"Review phase completion criteria",
			},
		})
	}

	if efficiency.BlockedAgents > 0 {
		recs = append(recs, app.SkillRecommendation{
			Skill:        domain.SkillAgentCoordination,
			CurrentLevel: learner.SkillLevel(domain.SkillAgentCoordination),
			TargetLevel:  pol.CoordinationTargetLevel,
			Priority:     app.PriorityHigh,
			Reason:       "Blocked agents detected in project",
			SuggestedActions: []string{
				"Learn agent dispatch strategies",
				"Practice conflict resolution",
				"Improve handoff procedures",
			},
		})
	}

	return recs
}
