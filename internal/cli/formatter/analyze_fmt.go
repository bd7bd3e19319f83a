package formatter

import (
	"fmt"
	"strings"

	"github.com/jmorland/bmadcoach/internal/app"
)

// FormatAnalysis formats an AnalyzeResponse into a styled CLI dashboard.
func FormatAnalysis(resp *app.AnalyzeResponse) string {
	var b strings.Builder

	if resp.Degraded {
		b.WriteString(StyleYellow.Render("⚠ degraded analysis: project telemetry unavailable, using defaults"))
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(Dim("  " + w))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	a := resp.Analysis

	b.WriteString(Header("Project Health"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Score: %s\n", ScoreBadge(a.Health.Score)))
	b.WriteString(BulletList(a.Health.Factors, StyleBlue))
	if len(a.Health.Issues) > 0 {
		b.WriteString(BulletList(a.Health.Issues, StyleRed))
	}
	b.WriteString("\n")

	b.WriteString(Header("Phase Readiness"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Phase: %s  Readiness: %s\n",
		StylePurple.Render(string(a.PhaseReadiness.CurrentPhase)),
		ScoreBadge(a.PhaseReadiness.ReadinessScore)))
	if len(a.PhaseReadiness.BlockingIssues) > 0 {
		b.WriteString(BulletList(a.PhaseReadiness.BlockingIssues, StyleRed))
	}
	b.WriteString(BulletList(a.PhaseReadiness.NextPhaseRecommendations, StyleBlue))
	b.WriteString("\n")

	b.WriteString(Header("Team Efficiency"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Agents: %d total, %d active, %d blocked  Score: %s\n",
		a.TeamEfficiency.TotalAgents,
		a.TeamEfficiency.ActiveAgents,
		a.TeamEfficiency.BlockedAgents,
		ScoreBadge(a.TeamEfficiency.EfficiencyScore)))
	if len(a.TeamEfficiency.CoordinationIssues) > 0 {
		b.WriteString(BulletList(a.TeamEfficiency.CoordinationIssues, StyleRed))
	}
	b.WriteString(BulletList(a.TeamEfficiency.Recommendations, StyleBlue))
	b.WriteString("\n")

	b.WriteString(FormatSuggestions(a.Suggestions))

	if len(a.SkillRecommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Skill Gaps"))
		b.WriteString("\n")
		for _, rec := range a.SkillRecommendations {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				PriorityBadge(rec.Priority),
				Bold(string(rec.Skill)),
				Dim(fmt.Sprintf("level %d → %d", rec.CurrentLevel, rec.TargetLevel))))
			b.WriteString(fmt.Sprintf("    %s\n", Dim(rec.Reason)))
			for _, action := range rec.SuggestedActions {
				b.WriteString(fmt.Sprintf("    %s %s\n", StyleBlue.Render("→"), action))
			}
		}
	}

	if len(a.PracticalExercises) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Practice Exercises"))
		b.WriteString("\n")
		for _, ex := range a.PracticalExercises {
			b.WriteString(fmt.Sprintf("  %s  %s %s\n",
				Bold(ex.Title),
				StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(ex.EstimatedTime))),
				Dim(string(ex.Difficulty))))
			b.WriteString(fmt.Sprintf("    %s\n", ex.Description))
		}
	}

	return b.String()
}
