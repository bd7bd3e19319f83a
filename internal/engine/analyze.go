package engine

import (
	"github.com/jmorland/bmadcoach/internal/app"
	"github.com/jmorland/bmadcoach/internal/assess"
	"github.com/jmorland/bmadcoach/internal/catalog"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// Engine bundles the scoring policies for one analysis configuration.
type Engine struct {
	Policy    Policy
	Health    assess.HealthPolicy
	Readiness assess.ReadinessPolicy
}

// New returns an engine with stock policies.
func New() *Engine {
	return &Engine{
		Policy:    DefaultPolicy(),
		Health:    assess.DefaultHealthPolicy(),
		Readiness: assess.DefaultReadinessPolicy(),
	}
}

// Analyze runs the full pipeline over one immutable snapshot: assess
// health, readiness, and efficiency; filter and score the catalog;
// synthesize the challenge and analysis-driven extras; rank; diagnose
// skill gaps; synthesize practice exercises. Identical inputs always
// produce identical output.
func (e *Engine) Analyze(project *domain.ProjectState, learner *domain.LearnerProgress, cat *catalog.Catalog) *app.ProjectLearningAnalysis {
	health := assess.AssessHealth(project, e.Health)
	readiness := assess.AssessPhaseReadiness(project, e.Readiness)
	efficiency := assess.AssessTeamEfficiency(project)

	candidates := FilterCatalog(cat, project, learner, e.Policy)
	if challenge := SynthesizeChallenge(project); challenge != nil {
		candidates = append(candidates, *challenge)
	}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		seen[c.ID] = true
	}
	for _, s := range AnalysisSuggestions(project, health, efficiency, learner, cat, e.Policy) {
		// Catalog candidates win over analysis-driven duplicates.
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		candidates = append(candidates, s)
	}

	return &app.ProjectLearningAnalysis{
		Health:               health,
		PhaseReadiness:       readiness,
		TeamEfficiency:       efficiency,
		Suggestions:          Rank(candidates, e.Policy),
		SkillRecommendations: RecommendSkillGaps(readiness, efficiency, learner, e.Policy),
		PracticalExercises:   SynthesizeExercises(project),
	}
}
