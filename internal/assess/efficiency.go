package assess

import (
	"math"

	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// AssessTeamEfficiency scores coordination health from the ratio of active
// to tracked agents. An empty team scores 0, not 100.
func AssessTeamEfficiency(project *domain.ProjectState) app.TeamEfficiencyMetrics {
	total := len(project.Agents)
	active := project.CountAgents(domain.AgentActive)
	blocked := project.CountAgents(domain.AgentBlocked)

	metrics := app.TeamEfficiencyMetrics{
		TotalAgents:   total,
		ActiveAgents:  active,
		BlockedAgents: blocked,
	}
	if total > 0 {
		metrics.EfficiencyScore = clampScore(int(math.Round(float64(active) / float64(total) * 100)))
	}

	if blocked > 0 {
		metrics.CoordinationIssues = []string{"Some agents are blocked"}
		metrics.Recommendations = []string{"Review and resolve agent blockers"}
	} else {
		metrics.Recommendations = []string{"Team coordination is good"}
	}
	return metrics
}
