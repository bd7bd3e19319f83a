package engine

import (
	"fmt"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// ValidateLessonEligibility checks one lesson against one project. Every
// violated constraint is collected into the result; a lesson can be
// invalid for several reasons at once, and callers always receive a
// ValidationResult, never an error, for rule violations. A nil project
// means no project is open.
func ValidateLessonEligibility(project *domain.ProjectState, lesson *domain.Lesson, pol Policy) app.ValidationResult {
	result := app.ValidationResult{IsValid: true}

	if lesson.RealProjectIntegration && project == nil {
		result.IsValid = false
		result.Reasons = append(result.Reasons, "This lesson requires an active project")
	}

	if project == nil {
		return result
	}

	if lesson.Phase != domain.PhaseGeneral && lesson.Phase != project.CurrentPhase {
		result.IsValid = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("This lesson is designed for %s phase, but project is in %s", lesson.Phase, project.CurrentPhase))
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Consider completing this lesson when your project reaches the %s phase", lesson.Phase))
	}

	if lesson.Difficulty == domain.DifficultyAdvanced && project.TotalStories < pol.AdvancedMinStories {
		result.IsValid = false
		result.Reasons = append(result.Reasons, "This lesson requires a more complex project with multiple stories")
		result.Requirements = append(result.Requirements,
			fmt.Sprintf("Add at least %d stories to your project", pol.AdvancedMinStories))
	}

	if lesson.HasTag("collaboration") && len(project.Agents) < pol.CollaborationMinAgents {
		result.IsValid = false
		result.Reasons = append(result.Reasons, "This lesson requires multiple active agents")
		result.Requirements = append(result.Requirements, "Ensure multiple agents are active in your project")
	}

	return result
}
