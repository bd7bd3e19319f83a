package engine

import (
	"strings"

	"github.com/jmorland/bmadcoach/internal/domain"
)

// relevanceFactor contributes a score delta and an optional reason
// fragment. Factors are commutative: accumulation order never changes the
// total, only the reason wording order, which is fixed by the factor list.
type relevanceFactor func() (int, string)

func accumulate(base int, factors []relevanceFactor) (int, string) {
	score := base
	var fragments []string
	for _, f := range factors {
		delta, fragment := f()
		score += delta
		if fragment != "" {
			fragments = append(fragments, fragment)
		}
	}
	reason := "Relevant to your current project"
	if len(fragments) > 0 {
		reason = strings.Join(fragments, "; ")
	}
	return clampScore(score), reason
}

// ScoreLesson computes a lesson's relevance to the project. The result is
// always in [0,100].
func ScoreLesson(lesson *domain.Lesson, project *domain.ProjectState, pol Policy) (int, string) {
	return accumulate(pol.LessonBase, []relevanceFactor{
		func() (int, string) {
			switch lesson.Phase {
			case project.CurrentPhase:
				return pol.PhaseExactBonus, "Matches your current phase"
			case domain.PhaseGeneral:
				return pol.PhaseGeneralBonus, "Applies to every phase"
			}
			return 0, ""
		},
		func() (int, string) {
			if lesson.RealProjectIntegration {
				return pol.RealProjectBonus, "Integrates with your live project"
			}
			return 0, ""
		},
		func() (int, string) {
			if project.ActiveStory != "" && pol.hasInProgressTag(lesson) {
				return pol.ActiveStoryTagBonus, "Supports your in-progress story work"
			}
			return 0, ""
		},
	})
}

// ScoreExercise computes an exercise's relevance to the project. The
// type-specific bonuses key off live project shape: simulation exercises
// want existing stories, dispatch exercises want a multi-agent team, and
// setup exercises want a blank project.
func ScoreExercise(exercise *domain.Exercise, project *domain.ProjectState, pol Policy) (int, string) {
	return accumulate(pol.ExerciseBase, []relevanceFactor{
		func() (int, string) {
			switch exercise.Type {
			case domain.ExerciseWorkflowSimulation:
				if project.TotalStories > 0 {
					return pol.WorkflowSimulationBonus, "Your project has stories to simulate with"
				}
			case domain.ExerciseAgentDispatch:
				if len(project.Agents) > 1 {
					return pol.AgentDispatchBonus, "Your project tracks multiple agents"
				}
			case domain.ExerciseProjectSetup:
				if project.TotalStories == 0 {
					return pol.ProjectSetupBonus, "Your project is still a blank slate"
				}
			case domain.ExerciseCommunication, domain.ExerciseQualityGates:
				// no shape-dependent bonus
			}
			return 0, ""
		},
		func() (int, string) {
			if exercise.RealProjectRequired {
				return pol.RealProjectRequiredBonus, "Runs against your real project"
			}
			return 0, ""
		},
	})
}
