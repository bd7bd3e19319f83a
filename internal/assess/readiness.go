package assess

import (
	"math"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// ReadinessPolicy holds the per-phase readiness constants.
type ReadinessPolicy struct {
	PlanningReady        int // at least one story exists
	PlanningNotReady     int
	StoryCreationReady   int // more than two stories exist
	StoryCreationPartial int
	QualityAssuranceBase int
	MinDetailedStories   int // stories wanted before leaving StoryCreation
}

// DefaultReadinessPolicy returns the stock phase readiness constants.
func DefaultReadinessPolicy() ReadinessPolicy {
	return ReadinessPolicy{
		PlanningReady:        80,
		PlanningNotReady:     30,
		StoryCreationReady:   85,
		StoryCreationPartial: 50,
		QualityAssuranceBase: 75,
		MinDetailedStories:   3,
	}
}

// AssessPhaseReadiness scores how ready the project is to exit its current
// phase. This only scores the transition; it never performs one.
func AssessPhaseReadiness(project *domain.ProjectState, pol ReadinessPolicy) app.PhaseReadinessAssessment {
	result := app.PhaseReadinessAssessment{CurrentPhase: project.CurrentPhase}

	switch project.CurrentPhase {
	case domain.PhasePlanning:
		if project.TotalStories > 0 {
			result.ReadinessScore = pol.PlanningReady
		} else {
			result.ReadinessScore = pol.PlanningNotReady
			result.BlockingIssues = append(result.BlockingIssues, "No stories created yet")
			result.NextPhaseRecommendations = append(result.NextPhaseRecommendations, "Create initial project stories")
		}

	case domain.PhaseStoryCreation:
		if project.TotalStories >= pol.MinDetailedStories {
			result.ReadinessScore = pol.StoryCreationReady
		} else {
			result.ReadinessScore = pol.StoryCreationPartial
			result.NextPhaseRecommendations = append(result.NextPhaseRecommendations, "Add more detailed stories")
		}

	case domain.PhaseDevelopment:
		// A project with no tracked work is not ready to leave development.
		ratio := project.CompletionRatio()
		result.ReadinessScore = clampScore(int(math.Round(ratio * 100)))
		if ratio < 0.8 {
			result.NextPhaseRecommendations = append(result.NextPhaseRecommendations, "Complete more development stories")
		}

	case domain.PhaseQualityAssurance:
		result.ReadinessScore = pol.QualityAssuranceBase
		result.NextPhaseRecommendations = append(result.NextPhaseRecommendations, "Complete quality reviews")

	case domain.PhaseComplete:
		result.ReadinessScore = 100
	}

	return result
}
