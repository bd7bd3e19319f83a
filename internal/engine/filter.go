package engine

import (
	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/catalog"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// FilterCatalog narrows the catalog to startable candidates and scores
// them. A lesson is a candidate when it is not yet completed, all of its
// prerequisites are completed, and its phase is the project's current phase
// or general. An exercise inherits candidacy from its parent lesson and
// carries the parent lesson id as its only prerequisite.
//
// Output order follows catalog declaration order, exercises directly after
// their lesson; the ranker relies on that order for deterministic
// tie-breaks.
func FilterCatalog(cat *catalog.Catalog, project *domain.ProjectState, learner *domain.LearnerProgress, pol Policy) []app.Suggestion {
	var candidates []app.Suggestion
	for i := range cat.Lessons() {
		lesson := &cat.Lessons()[i]
		if learner.HasCompleted(lesson.ID) {
			continue
		}
		if !learner.PrerequisitesMet(lesson.Prerequisites) {
			continue
		}
		if lesson.Phase != project.CurrentPhase && lesson.Phase != domain.PhaseGeneral {
			continue
		}

		candidates = append(candidates, lessonSuggestion(lesson, project, pol))
		for j := range lesson.Exercises {
			candidates = append(candidates, exerciseSuggestion(&lesson.Exercises[j], lesson, project, pol))
		}
	}
	return candidates
}

func lessonSuggestion(lesson *domain.Lesson, project *domain.ProjectState, pol Policy) app.Suggestion {
	score, reason := ScoreLesson(lesson, project, pol)
	phase := lesson.Phase
	if phase == domain.PhaseGeneral {
		phase = ""
	}
	return app.Suggestion{
		Type:            app.SuggestionLesson,
		ID:              lesson.ID,
		Title:           lesson.Title,
		Description:     lesson.Description,
		RelevanceScore:  score,
		Reason:          reason,
		EstimatedTime:   lesson.EstimatedDuration,
		Difficulty:      lesson.Difficulty,
		Phase:           phase,
		Prerequisites:   lesson.Prerequisites,
		ProjectSpecific: lesson.RealProjectIntegration,
	}
}

func exerciseSuggestion(exercise *domain.Exercise, parent *domain.Lesson, project *domain.ProjectState, pol Policy) app.Suggestion {
	score, reason := ScoreExercise(exercise, project, pol)
	return app.Suggestion{
		Type:            app.SuggestionExercise,
		ID:              exercise.ID,
		Title:           exercise.Title,
		Description:     exercise.Description,
		RelevanceScore:  score,
		Reason:          reason,
		EstimatedTime:   exercise.EstimatedTime,
		Difficulty:      exercise.Difficulty,
		Prerequisites:   []string{parent.ID},
		ProjectSpecific: exercise.RealProjectRequired,
	}
}
