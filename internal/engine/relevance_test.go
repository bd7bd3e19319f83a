package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmorland/bmadcoach/internal/domain"
)

func TestScoreLesson(t *testing.T) {
	pol := DefaultPolicy()

	tests := []struct {
		name    string
		lesson  domain.Lesson
		project domain.ProjectState
		want    int
	}{
		{
			name:    "general phase only",
			lesson:  domain.Lesson{Phase: domain.PhaseGeneral},
			project: domain.ProjectState{CurrentPhase: domain.PhasePlanning},
			want:    65, // 50 + 15
		},
		{
			name:    "exact phase match",
			lesson:  domain.Lesson{Phase: domain.PhaseDevelopment},
			project: domain.ProjectState{CurrentPhase: domain.PhaseDevelopment},
			want:    80, // 50 + 30
		},
		{
			name:    "real project integration",
			lesson:  domain.Lesson{Phase: domain.PhaseGeneral, RealProjectIntegration: true},
			project: domain.ProjectState{CurrentPhase: domain.PhasePlanning},
			want:    85, // 50 + 15 + 20
		},
		{
			name: "active story tag intersection",
			lesson: domain.Lesson{
				Phase:                  domain.PhaseGeneral,
				RealProjectIntegration: true,
				Tags:                   []string{"workflow", "phases"},
			},
			project: domain.ProjectState{CurrentPhase: domain.PhaseDevelopment, ActiveStory: "story-1"},
			want:    100, // 50 + 15 + 20 + 15
		},
		{
			name: "in-progress tags ignored without active story",
			lesson: domain.Lesson{
				Phase: domain.PhaseGeneral,
				Tags:  []string{"development"},
			},
			project: domain.ProjectState{CurrentPhase: domain.PhaseDevelopment},
			want:    65,
		},
		{
			name: "clamped at 100",
			lesson: domain.Lesson{
				Phase:                  domain.PhaseDevelopment,
				RealProjectIntegration: true,
				Tags:                   []string{"story"},
			},
			project: domain.ProjectState{CurrentPhase: domain.PhaseDevelopment, ActiveStory: "story-2"},
			want:    100, // 50 + 30 + 20 + 15 = 115, clamped
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := ScoreLesson(&tt.lesson, &tt.project, pol)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestScoreExercise(t *testing.T) {
	pol := DefaultPolicy()

	tests := []struct {
		name     string
		exercise domain.Exercise
		project  domain.ProjectState
		want     int
	}{
		{
			name:     "workflow simulation with stories",
			exercise: domain.Exercise{Type: domain.ExerciseWorkflowSimulation},
			project:  domain.ProjectState{TotalStories: 4},
			want:     75, // 50 + 25
		},
		{
			name:     "workflow simulation without stories",
			exercise: domain.Exercise{Type: domain.ExerciseWorkflowSimulation},
			project:  domain.ProjectState{},
			want:     50,
		},
		{
			name:     "agent dispatch with multi-agent team",
			exercise: domain.Exercise{Type: domain.ExerciseAgentDispatch},
			project: domain.ProjectState{Agents: map[string]domain.AgentStatus{
				"Developer": {Status: domain.AgentActive},
				"QA":        {Status: domain.AgentIdle},
			}},
			want: 70, // 50 + 20
		},
		{
			name:     "project setup on empty project",
			exercise: domain.Exercise{Type: domain.ExerciseProjectSetup, RealProjectRequired: true},
			project:  domain.ProjectState{},
			want:     95, // 50 + 30 + 15
		},
		{
			name:     "project setup bonus withheld once stories exist",
			exercise: domain.Exercise{Type: domain.ExerciseProjectSetup},
			project:  domain.ProjectState{TotalStories: 1},
			want:     50,
		},
		{
			name:     "real project requirement alone",
			exercise: domain.Exercise{Type: domain.ExerciseCommunication, RealProjectRequired: true},
			project:  domain.ProjectState{},
			want:     65, // 50 + 15
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := ScoreExercise(&tt.exercise, &tt.project, pol)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestScoringIsOrderIndependent(t *testing.T) {
	// Same inputs, repeated calls: scores never drift.
	pol := DefaultPolicy()
	lesson := domain.Lesson{Phase: domain.PhaseGeneral, RealProjectIntegration: true, Tags: []string{"workflow"}}
	project := domain.ProjectState{CurrentPhase: domain.PhaseDevelopment, ActiveStory: "story-9", TotalStories: 3}

	first, _ := ScoreLesson(&lesson, &project, pol)
	for i := 0; i < 10; i++ {
		again, _ := ScoreLesson(&lesson, &project, pol)
		assert.Equal(t, first, again)
	}
}
