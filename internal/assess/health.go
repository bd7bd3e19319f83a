package assess

import (
	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// HealthPolicy holds the tunable constants for project health scoring.
// The defaults are inherited policy, not derived values; adjust with care.
type HealthPolicy struct {
	CompletionHigh     int     // ratio >= CompletionHighRatio
	CompletionMid      int     // ratio >= CompletionMidRatio
	CompletionLow      int     // everything else
	CompletionHighRatio float64
	CompletionMidRatio  float64
	ManyActiveAgents   int // more than two active agents
	SomeActiveAgents   int // at least one active agent
	NoActiveAgents     int
	PastPlanningBonus  int
	ActiveStoryBonus   int
	RecentActivityBonus int
	LowHealthThreshold int
}

// DefaultHealthPolicy returns the stock health scoring constants.
func DefaultHealthPolicy() HealthPolicy {
	return HealthPolicy{
		CompletionHigh:      30,
		CompletionMid:       20,
		CompletionLow:       10,
		CompletionHighRatio: 0.8,
		CompletionMidRatio:  0.5,
		ManyActiveAgents:    25,
		SomeActiveAgents:    15,
		NoActiveAgents:      5,
		PastPlanningBonus:   20,
		ActiveStoryBonus:    15,
		RecentActivityBonus: 10,
		LowHealthThreshold:  50,
	}
}

// AssessHealth scores overall project vitality from story completion, agent
// activity, and phase progress. Always computable: malformed counts are
// clamped, never rejected.
func AssessHealth(project *domain.ProjectState, pol HealthPolicy) app.ProjectHealthScore {
	score := 0
	var factors []string

	ratio := project.CompletionRatio()
	switch {
	case ratio >= pol.CompletionHighRatio:
		score += pol.CompletionHigh
		factors = append(factors, "High story completion rate")
	case ratio >= pol.CompletionMidRatio:
		score += pol.CompletionMid
		factors = append(factors, "Good story completion rate")
	default:
		score += pol.CompletionLow
		factors = append(factors, "Low story completion rate")
	}

	active := project.CountAgents(domain.AgentActive)
	switch {
	case active > 2:
		score += pol.ManyActiveAgents
		factors = append(factors, "Multiple active agents")
	case active > 0:
		score += pol.SomeActiveAgents
		factors = append(factors, "Some agent activity")
	default:
		score += pol.NoActiveAgents
		factors = append(factors, "Low agent activity")
	}

	if project.CurrentPhase.After(domain.PhasePlanning) {
		score += pol.PastPlanningBonus
		factors = append(factors, "Project has progressed beyond planning")
	}

	if project.ActiveStory != "" {
		score += pol.ActiveStoryBonus
		factors = append(factors, "Active story in progress")
	}

	if project.HasActivitySignal() {
		score += pol.RecentActivityBonus
		factors = append(factors, "Recent project activity")
	}

	result := app.ProjectHealthScore{
		Score:   clampScore(score),
		Factors: factors,
	}
	if result.Score < pol.LowHealthThreshold {
		result.Issues = []string{"Project may need more active management"}
	}
	return result
}

// clampScore bounds a score to the [0,100] integer range.
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
