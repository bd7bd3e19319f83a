package domain

// Lesson is one entry of the lesson catalog. Entries are immutable during a
// single analysis run; the catalog source owns authoring and storage.
type Lesson struct {
	ID                     string
	Title                  string
	Description            string
	Phase                  Phase // one of the five phases or PhaseGeneral
	Difficulty             Difficulty
	Prerequisites          []string // lesson ids, all required
	Tags                   []string
	EstimatedDuration      int // minutes
	RealProjectIntegration bool
	Exercises              []Exercise
}

// Exercise is a practice task nested under a catalog lesson.
type Exercise struct {
	ID                 string
	Title              string
	Description        string
	Type               ExerciseType
	Difficulty         Difficulty
	EstimatedTime      int // minutes
	RealProjectRequired bool
}

// HasTag reports whether the lesson carries the given tag.
func (l *Lesson) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
