package app

import "github.com/jmorland/bmadcoach/internal/domain"

// SuggestionType classifies a ranked learning suggestion.
type SuggestionType string

const (
	SuggestionLesson    SuggestionType = "lesson"
	SuggestionExercise  SuggestionType = "exercise"
	SuggestionChallenge SuggestionType = "challenge"
	SuggestionTip       SuggestionType = "tip"
)

// Suggestion is one ranked learning opportunity surfaced to the learner.
type Suggestion struct {
	Type            SuggestionType
	ID              string
	Title           string
	Description     string
	RelevanceScore  int // always in [0,100]
	Reason          string
	EstimatedTime   int // minutes, 0 when unknown (tips)
	Difficulty      domain.Difficulty // empty for tips
	Phase           domain.Phase      // empty when phase-independent
	Prerequisites   []string
	ProjectSpecific bool
}

// ProjectHealthScore summarizes overall project vitality.
type ProjectHealthScore struct {
	Score   int // 0-100
	Factors []string
	Issues  []string
}

// PhaseReadinessAssessment scores how ready the project is to exit its
// current phase. The engine only scores readiness; it never transitions.
type PhaseReadinessAssessment struct {
	CurrentPhase             domain.Phase
	ReadinessScore           int // 0-100
	NextPhaseRecommendations []string
	BlockingIssues           []string
}

// TeamEfficiencyMetrics scores coordination health from agent statuses.
type TeamEfficiencyMetrics struct {
	TotalAgents        int
	ActiveAgents       int
	BlockedAgents      int
	EfficiencyScore    int // 0-100
	CoordinationIssues []string
	Recommendations    []string
}

// Priority ranks a skill recommendation's urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// SkillRecommendation is one prioritized skill-improvement suggestion.
type SkillRecommendation struct {
	Skill            domain.Skill
	CurrentLevel     int
	TargetLevel      int
	Priority         Priority
	Reason           string
	SuggestedActions []string
}

// ExerciseContext captures the live project values a synthesized exercise
// was parameterized with, so the exercise text is reproducible from its
// originating data.
type ExerciseContext struct {
	Story            string
	Phase            domain.Phase
	CompletedStories int
	TotalStories     int
}

// PracticalExercise is a project-flavored exercise synthesized from the
// current phase and active-story context.
type PracticalExercise struct {
	ID              string
	Title           string
	Description     string
	Difficulty      domain.Difficulty
	EstimatedTime   int // minutes
	ProjectRequired bool
	Skills          []domain.Skill
	Context         ExerciseContext
}

// ValidationResult reports whether a specific lesson is usable against a
// specific project. All violated constraints are collected, never
// short-circuited, so a lesson can be invalid for several reasons at once.
type ValidationResult struct {
	IsValid         bool
	Reasons         []string
	Requirements    []string
	Recommendations []string
}

// ProjectLearningAnalysis aggregates every assessor and recommender output
// for one project snapshot.
type ProjectLearningAnalysis struct {
	Health               ProjectHealthScore
	PhaseReadiness       PhaseReadinessAssessment
	TeamEfficiency       TeamEfficiencyMetrics
	Suggestions          []Suggestion
	SkillRecommendations []SkillRecommendation
	PracticalExercises   []PracticalExercise
}
