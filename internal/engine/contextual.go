package engine

import (
	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/catalog"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// Known UI views for contextual suggestions.
var knownViews = map[string]bool{
	"workflow":      true,
	"dispatch":      true,
	"communication": true,
	"creator":       true,
	"projects":      true,
}

// KnownView reports whether view names a UI surface with a fallback set.
func KnownView(view string) bool {
	return knownViews[view]
}

// ViewSuggestions returns the per-view fallback suggestions used when no
// project snapshot is available.
func ViewSuggestions(view string) []app.Suggestion {
	switch view {
	case "workflow":
		return []app.Suggestion{{
			Type:           app.SuggestionLesson,
			ID:             "workflow-management",
			Title:          "Workflow Management",
			Description:    "Master the BMAD 5-phase workflow",
			RelevanceScore: 85,
			Reason:         "You are currently managing project workflows",
		}}
	case "dispatch":
		return []app.Suggestion{{
			Type:           app.SuggestionLesson,
			ID:             "agent-coordination",
			Title:          "Agent Coordination",
			Description:    "Learn effective agent dispatch strategies",
			RelevanceScore: 90,
			Reason:         "You are actively dispatching agents",
		}}
	case "communication":
		return []app.Suggestion{{
			Type:           app.SuggestionLesson,
			ID:             "communication-best-practices",
			Title:          "Communication Best Practices",
			Description:    "Improve team communication efficiency",
			RelevanceScore: 80,
			Reason:         "You are managing team communications",
		}}
	case "creator":
		return []app.Suggestion{{
			Type:           app.SuggestionLesson,
			ID:             "project-setup",
			Title:          "Project Setup",
			Description:    "Learn to create effective BMAD projects",
			RelevanceScore: 95,
			Reason:         "You are setting up a new project",
		}}
	case "projects":
		return []app.Suggestion{{
			Type:           app.SuggestionTip,
			ID:             "project-overview",
			Title:          "Project Overview",
			Description:    "Review your project health and progress",
			RelevanceScore: 70,
			Reason:         "You are reviewing project status",
		}}
	}
	return nil
}

// AnalysisSuggestions derives extra suggestions from assessment results and
// project shape. Entries that name a catalog lesson are emitted as lesson
// suggestions only when the learner can actually start them; entries whose
// id has no catalog backing are downgraded to tips so every lesson
// suggestion stays startable.
func AnalysisSuggestions(
	project *domain.ProjectState,
	health app.ProjectHealthScore,
	efficiency app.TeamEfficiencyMetrics,
	learner *domain.LearnerProgress,
	cat *catalog.Catalog,
	pol Policy,
) []app.Suggestion {
	var out []app.Suggestion
	add := func(s app.Suggestion) {
		if s.Type == app.SuggestionLesson {
			lesson, ok := cat.Lesson(s.ID)
			if !ok {
				s.Type = app.SuggestionTip
			} else {
				if learner.HasCompleted(s.ID) || !learner.PrerequisitesMet(lesson.Prerequisites) {
					return
				}
				s.Prerequisites = lesson.Prerequisites
			}
		}
		out = append(out, s)
	}

	if health.Score < pol.LowHealthThreshold {
		add(app.Suggestion{
			Type:           app.SuggestionLesson,
			ID:             "project-health-monitoring",
			Title:          "Project Health & Monitoring",
			Description:    "Learn to identify and resolve common project issues",
			RelevanceScore: 90,
			Reason:         "Your project health score indicates room for improvement",
		})
	}

	for _, s := range phaseSuggestions(project, learner, pol) {
		add(s)
	}

	if efficiency.EfficiencyScore < pol.LowEfficiencyThreshold {
		add(app.Suggestion{
			Type:           app.SuggestionLesson,
			ID:             "agent-coordination",
			Title:          "Agent Coordination",
			Description:    "Improve team coordination and agent management",
			RelevanceScore: 85,
			Reason:         "Team efficiency metrics suggest coordination improvements needed",
		})
	}

	return out
}

func phaseSuggestions(project *domain.ProjectState, learner *domain.LearnerProgress, pol Policy) []app.Suggestion {
	var out []app.Suggestion

	switch project.CurrentPhase {
	case domain.PhasePlanning:
		if project.TotalStories == 0 {
			out = append(out, app.Suggestion{
				Type:           app.SuggestionExercise,
				ID:             "story-creation-basics",
				Title:          "Create Your First Stories",
				Description:    "Learn to break down requirements into actionable stories",
				RelevanceScore: 95,
				Reason:         "No stories found in planning phase",
			})
		}
		if !learner.HasCompleted("project-setup") {
			out = append(out, app.Suggestion{
				Type:           app.SuggestionLesson,
				ID:             "project-setup",
				Title:          "Project Setup",
				Description:    "Master BMAD project configuration",
				RelevanceScore: 90,
				Reason:         "Setting up project foundation is crucial",
			})
		}

	case domain.PhaseStoryCreation:
		if project.TotalStories < pol.MinDetailedStories {
			out = append(out, app.Suggestion{
				Type:           app.SuggestionTip,
				ID:             "story-breakdown-strategy",
				Title:          "Story Breakdown Strategy",
				Description:    "Break large features into smaller, manageable stories",
				RelevanceScore: 85,
				Reason:         "Limited stories may indicate need for better breakdown",
			})
		}

	case domain.PhaseDevelopment:
		if project.ActiveStory != "" {
			out = append(out, app.Suggestion{
				Type:            app.SuggestionExercise,
				ID:              "story-development-practice",
				Title:           "Active Story Development",
				Description:     "Apply BMAD development practices to your current story",
				RelevanceScore:  95,
				Reason:          "You have an active story in development",
				ProjectSpecific: true,
			})
		}
		if project.CompletionRatio() < pol.LowVelocityRatio {
			out = append(out, app.Suggestion{
				Type:           app.SuggestionLesson,
				ID:             "development-velocity",
				Title:          "Development Velocity",
				Description:    "Learn to increase development speed and quality",
				RelevanceScore: 80,
				Reason:         "Low story completion rate detected",
			})
		}

	case domain.PhaseQualityAssurance:
		out = append(out, app.Suggestion{
			Type:           app.SuggestionLesson,
			ID:             "quality-gates",
			Title:          "Quality Gates",
			Description:    "Implement comprehensive quality assurance",
			RelevanceScore: 90,
			Reason:         "Quality assurance phase requires systematic testing",
		})

	case domain.PhaseComplete:
		out = append(out, app.Suggestion{
			Type:           app.SuggestionTip,
			ID:             "project-retrospective",
			Title:          "Project Retrospective",
			Description:    "Reflect on lessons learned and improvements for next project",
			RelevanceScore: 85,
			Reason:         "Project completion is a great time for reflection",
		})
	}

	return out
}
