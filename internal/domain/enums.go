package domain

// Phase is one of the five ordered BMAD workflow stages.
type Phase string

const (
	PhasePlanning         Phase = "Planning"
	PhaseStoryCreation    Phase = "StoryCreation"
	PhaseDevelopment      Phase = "Development"
	PhaseQualityAssurance Phase = "QualityAssurance"
	PhaseComplete         Phase = "Complete"
)

// PhaseGeneral is the catalog sentinel for lessons that apply to any phase.
// It is never a valid project phase.
const PhaseGeneral Phase = "general"

// phaseOrder maps each phase to its position in the workflow sequence.
var phaseOrder = map[Phase]int{
	PhasePlanning:         0,
	PhaseStoryCreation:    1,
	PhaseDevelopment:      2,
	PhaseQualityAssurance: 3,
	PhaseComplete:         4,
}

// ValidPhase reports whether p is one of the five workflow phases.
func ValidPhase(p Phase) bool {
	_, ok := phaseOrder[p]
	return ok
}

// PhaseIndex returns the position of p in the ordered workflow sequence,
// or -1 for unknown phases (including the general sentinel).
func PhaseIndex(p Phase) int {
	if i, ok := phaseOrder[p]; ok {
		return i
	}
	return -1
}

// After reports whether p comes strictly after other in the workflow order.
func (p Phase) After(other Phase) bool {
	pi, oi := PhaseIndex(p), PhaseIndex(other)
	return pi >= 0 && oi >= 0 && pi > oi
}

// AgentStatusType is the coordination status of a tracked agent role.
type AgentStatusType string

const (
	AgentIdle    AgentStatusType = "Idle"
	AgentWaiting AgentStatusType = "Waiting"
	AgentActive  AgentStatusType = "Active"
	AgentBlocked AgentStatusType = "Blocked"
)

// Difficulty grades catalog lessons and exercises.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyExpert       Difficulty = "expert"
)

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true, "expert": true,
}

// ExerciseType identifies the kind of practice an exercise drills. The
// relevance scorer switches on it exhaustively, so new types must be added
// here and in the scorer together.
type ExerciseType string

const (
	ExerciseWorkflowSimulation ExerciseType = "workflow-simulation"
	ExerciseAgentDispatch      ExerciseType = "agent-dispatch"
	ExerciseCommunication      ExerciseType = "communication"
	ExerciseProjectSetup       ExerciseType = "project-setup"
	ExerciseQualityGates       ExerciseType = "quality-gates"
)

// Skill is a trackable BMAD methodology competency.
type Skill string

const (
	SkillProjectSetup        Skill = "ProjectSetup"
	SkillWorkflowManagement  Skill = "WorkflowManagement"
	SkillAgentCoordination   Skill = "AgentCoordination"
	SkillCommunication       Skill = "Communication"
	SkillQualityAssurance    Skill = "QualityAssurance"
	SkillProblemSolving      Skill = "ProblemSolving"
	SkillProcessOptimization Skill = "ProcessOptimization"
	SkillTeamLeadership      Skill = "TeamLeadership"
)

// AllSkills lists every trackable skill in display order.
var AllSkills = []Skill{
	SkillProjectSetup,
	SkillWorkflowManagement,
	SkillAgentCoordination,
	SkillCommunication,
	SkillQualityAssurance,
	SkillProblemSolving,
	SkillProcessOptimization,
	SkillTeamLeadership,
}

// LearningOutcome records how an applied lesson went on a real project.
type LearningOutcome string

const (
	OutcomeSuccess LearningOutcome = "success"
	OutcomePartial LearningOutcome = "partial"
	OutcomeFailed  LearningOutcome = "failed"
)

// ValidOutcome reports whether o is a known learning outcome.
func ValidOutcome(o LearningOutcome) bool {
	switch o {
	case OutcomeSuccess, OutcomePartial, OutcomeFailed:
		return true
	}
	return false
}
