// Package engine is the recommendation core: catalog filtering, relevance
// scoring, opportunity ranking, skill-gap diagnosis, exercise synthesis,
// and lesson eligibility validation. Everything here is pure and
// deterministic over an immutable input snapshot; no I/O, no clocks, no
// shared state.
package engine

import "github.com/jmorland/bmadcoach/internal/domain"

// Policy holds every scoring constant the engine uses. The defaults are
// inherited policy; each weight is small enough that no single bonus can
// push a base score past 100 on its own.
type Policy struct {
	// Relevance scoring.
	LessonBase          int
	ExerciseBase        int
	PhaseExactBonus     int
	PhaseGeneralBonus   int
	RealProjectBonus    int
	ActiveStoryTagBonus int
	InProgressTags      []string

	// Exercise type bonuses.
	WorkflowSimulationBonus  int // fires when the project has stories
	AgentDispatchBonus       int // fires when more than one agent is tracked
	ProjectSetupBonus        int // fires when the project has no stories yet
	RealProjectRequiredBonus int

	// Ranking.
	TopK int

	// Skill gap triggers.
	ReadinessGapThreshold   int
	WorkflowTargetLevel     int
	CoordinationTargetLevel int

	// Analysis-driven suggestion triggers.
	LowHealthThreshold     int
	LowEfficiencyThreshold int
	MinDetailedStories     int
	LowVelocityRatio       float64

	// Eligibility.
	AdvancedMinStories int
	CollaborationMinAgents int
}

// DefaultPolicy returns the stock engine constants.
func DefaultPolicy() Policy {
	return Policy{
		LessonBase:          50,
		ExerciseBase:        50,
		PhaseExactBonus:     30,
		PhaseGeneralBonus:   15,
		RealProjectBonus:    20,
		ActiveStoryTagBonus: 15,
		InProgressTags:      []string{"development", "story", "workflow"},

		WorkflowSimulationBonus:  25,
		AgentDispatchBonus:       20,
		ProjectSetupBonus:        30,
		RealProjectRequiredBonus: 15,

		TopK: 10,

		ReadinessGapThreshold:   70,
		WorkflowTargetLevel:     75,
		CoordinationTargetLevel: 80,

		LowHealthThreshold:     70,
		LowEfficiencyThreshold: 60,
		MinDetailedStories:     3,
		LowVelocityRatio:       0.3,

		AdvancedMinStories:     3,
		CollaborationMinAgents: 2,
	}
}

func (p Policy) hasInProgressTag(lesson *domain.Lesson) bool {
	for _, tag := range p.InProgressTags {
		if lesson.HasTag(tag) {
			return true
		}
	}
	return false
}

// clampScore bounds a relevance score to the [0,100] integer range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
