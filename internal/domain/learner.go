package domain

import "time"

// LearnerProgress is a snapshot of the learner's mastery record. It is
// owned by the progress store; the engine reads it and reports observations
// but never mutates a snapshot in place.
type LearnerProgress struct {
	CompletedLessons  []string
	SkillLevels       map[Skill]int // 0-100 per skill
	Achievements      []string
	TotalLearningTime int // seconds
	StreakDays        int
	LastActive        *time.Time
}

// DefaultProgress returns a zeroed mastery record with every skill at 0,
// used when the progress store is empty or unreachable.
func DefaultProgress() *LearnerProgress {
	levels := make(map[Skill]int, len(AllSkills))
	for _, s := range AllSkills {
		levels[s] = 0
	}
	return &LearnerProgress{
		CompletedLessons: []string{},
		SkillLevels:      levels,
		Achievements:     []string{},
	}
}

// HasCompleted reports whether the learner has completed the given lesson.
func (lp *LearnerProgress) HasCompleted(lessonID string) bool {
	for _, id := range lp.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}

// PrerequisitesMet reports whether every id in prereqs is completed.
func (lp *LearnerProgress) PrerequisitesMet(prereqs []string) bool {
	for _, id := range prereqs {
		if !lp.HasCompleted(id) {
			return false
		}
	}
	return true
}

// SkillLevel returns the recorded level for a skill, defaulting to 0.
func (lp *LearnerProgress) SkillLevel(s Skill) int {
	if lp.SkillLevels == nil {
		return 0
	}
	return lp.SkillLevels[s]
}

// MasteryLevel derives a coarse mastery band from the average skill level.
func (lp *LearnerProgress) MasteryLevel() Difficulty {
	if len(lp.SkillLevels) == 0 {
		return DifficultyBeginner
	}
	total := 0
	for _, v := range lp.SkillLevels {
		total += v
	}
	avg := total / len(lp.SkillLevels)
	switch {
	case avg >= 80:
		return DifficultyExpert
	case avg >= 55:
		return DifficultyAdvanced
	case avg >= 30:
		return DifficultyIntermediate
	default:
		return DifficultyBeginner
	}
}
