package domain

import "time"

// Observation is one recorded learning event: a lesson or exercise applied
// against a real project, with the project shape at the time of the report.
type Observation struct {
	ID               string
	ProjectID        string
	LessonID         string
	SkillsApplied    []Skill
	Outcome          LearningOutcome
	Phase            Phase
	TotalStories     int
	CompletedStories int
	ObservedAt       time.Time
}

// SkillDelta returns the skill-level bump an outcome earns per applied
// skill. Even a failed attempt counts for something.
func (o *Observation) SkillDelta() int {
	switch o.Outcome {
	case OutcomeSuccess:
		return 10
	case OutcomePartial:
		return 5
	case OutcomeFailed:
		return 1
	}
	return 0
}
