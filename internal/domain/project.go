package domain

import "time"

// ProjectState is a read-only snapshot of a BMAD project's coordination
// state. It is owned and mutated by the external orchestrator; the engine
// never writes it.
type ProjectState struct {
	ProjectID        string
	Name             string
	CurrentPhase     Phase
	TotalStories     int
	CompletedStories int
	ActiveStory      string // empty when no story is in flight
	Agents           map[string]AgentStatus
	WorkflowHistory  []WorkflowEvent
}

// AgentStatus tracks one agent role's coordination state.
type AgentStatus struct {
	Status       AgentStatusType
	LastActivity *time.Time
	CurrentTask  string
}

// WorkflowEvent is one entry of the project's append-only coordination log.
type WorkflowEvent struct {
	EventType   string
	Agent       string
	Description string
	Timestamp   time.Time
}

// CompletionRatio returns completedStories/totalStories clamped to [0,1].
// Zero total stories yields 0. Malformed snapshots with more completed than
// total stories are treated as fully complete rather than rejected.
func (p *ProjectState) CompletionRatio() float64 {
	if p.TotalStories <= 0 {
		return 0
	}
	done := p.CompletedStories
	if done < 0 {
		done = 0
	}
	if done > p.TotalStories {
		done = p.TotalStories
	}
	return float64(done) / float64(p.TotalStories)
}

// CountAgents returns the number of agents with the given status.
func (p *ProjectState) CountAgents(status AgentStatusType) int {
	n := 0
	for _, a := range p.Agents {
		if a.Status == status {
			n++
		}
	}
	return n
}

// HasActivitySignal reports whether the snapshot carries any evidence of
// recent work: a non-empty workflow history or any agent with a recorded
// last-activity timestamp. Snapshot files often omit fine-grained
// timestamps, so this is the coarsest freshness signal available.
func (p *ProjectState) HasActivitySignal() bool {
	if len(p.WorkflowHistory) > 0 {
		return true
	}
	for _, a := range p.Agents {
		if a.LastActivity != nil {
			return true
		}
	}
	return false
}
