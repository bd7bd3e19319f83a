package catalog

import (
	"fmt"

	"github.com/jmorland/bmadcoach/internal/domain"
)

// lessonDoc is the YAML shape of one lesson file.
type lessonDoc struct {
	ID                     string        `yaml:"id"`
	Title                  string        `yaml:"title"`
	Description            string        `yaml:"description"`
	Phase                  string        `yaml:"phase"`
	Difficulty             string        `yaml:"difficulty"`
	Prerequisites          []string      `yaml:"prerequisites"`
	Tags                   []string      `yaml:"tags"`
	EstimatedDuration      int           `yaml:"estimated_duration"`
	RealProjectIntegration bool          `yaml:"real_project_integration"`
	Exercises              []exerciseDoc `yaml:"exercises"`
}

type exerciseDoc struct {
	ID                  string `yaml:"id"`
	Title               string `yaml:"title"`
	Description         string `yaml:"description"`
	Type                string `yaml:"type"`
	Difficulty          string `yaml:"difficulty"`
	EstimatedTime       int    `yaml:"estimated_time"`
	RealProjectRequired bool   `yaml:"real_project_required"`
}

func (d *lessonDoc) validate() error {
	if d.ID == "" {
		return fmt.Errorf("lesson is missing an id")
	}
	if d.Title == "" {
		return fmt.Errorf("lesson %s is missing a title", d.ID)
	}
	phase := domain.Phase(d.Phase)
	if phase != domain.PhaseGeneral && !domain.ValidPhase(phase) {
		return fmt.Errorf("lesson %s has unknown phase %q", d.ID, d.Phase)
	}
	if !validDifficulty(d.Difficulty) {
		return fmt.Errorf("lesson %s has unknown difficulty %q", d.ID, d.Difficulty)
	}
	if d.EstimatedDuration < 0 {
		return fmt.Errorf("lesson %s has negative duration", d.ID)
	}
	for i, ex := range d.Exercises {
		if ex.ID == "" {
			return fmt.Errorf("lesson %s exercise %d is missing an id", d.ID, i)
		}
		if !validExerciseType(ex.Type) {
			return fmt.Errorf("lesson %s exercise %s has unknown type %q", d.ID, ex.ID, ex.Type)
		}
		if !validDifficulty(ex.Difficulty) {
			return fmt.Errorf("lesson %s exercise %s has unknown difficulty %q", d.ID, ex.ID, ex.Difficulty)
		}
	}
	return nil
}

func (d *lessonDoc) toLesson() domain.Lesson {
	lesson := domain.Lesson{
		ID:                     d.ID,
		Title:                  d.Title,
		Description:            d.Description,
		Phase:                  domain.Phase(d.Phase),
		Difficulty:             domain.Difficulty(d.Difficulty),
		Prerequisites:          d.Prerequisites,
		Tags:                   d.Tags,
		EstimatedDuration:      d.EstimatedDuration,
		RealProjectIntegration: d.RealProjectIntegration,
	}
	for _, ex := range d.Exercises {
		lesson.Exercises = append(lesson.Exercises, domain.Exercise{
			ID:                  ex.ID,
			Title:               ex.Title,
			Description:         ex.Description,
			Type:                domain.ExerciseType(ex.Type),
			Difficulty:          domain.Difficulty(ex.Difficulty),
			EstimatedTime:       ex.EstimatedTime,
			RealProjectRequired: ex.RealProjectRequired,
		})
	}
	return lesson
}

func validDifficulty(s string) bool {
	switch domain.Difficulty(s) {
	case domain.DifficultyBeginner, domain.DifficultyIntermediate, domain.DifficultyAdvanced, domain.DifficultyExpert:
		return true
	}
	return false
}

func validExerciseType(s string) bool {
	switch domain.ExerciseType(s) {
	case domain.ExerciseWorkflowSimulation, domain.ExerciseAgentDispatch, domain.ExerciseCommunication,
		domain.ExerciseProjectSetup, domain.ExerciseQualityGates:
		return true
	}
	return false
}
