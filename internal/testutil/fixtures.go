package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmorland/bmadcoach/internal/domain"
)

// Project options
type ProjectOption func(*domain.ProjectState)

func WithPhase(p domain.Phase) ProjectOption {
	return func(s *domain.ProjectState) {
		s.CurrentPhase = p
	}
}

func WithStories(total, completed int) ProjectOption {
	return func(s *domain.ProjectState) {
		s.TotalStories = total
		s.CompletedStories = completed
	}
}

func WithActiveStory(id string) ProjectOption {
	return func(s *domain.ProjectState) {
		s.ActiveStory = id
	}
}

func WithAgent(role string, status domain.AgentStatusType) ProjectOption {
	return func(s *domain.ProjectState) {
		if s.Agents == nil {
			s.Agents = make(map[string]domain.AgentStatus)
		}
		s.Agents[role] = domain.AgentStatus{Status: status}
	}
}

func WithWorkflowEvent(eventType, agent string, at time.Time) ProjectOption {
	return func(s *domain.ProjectState) {
		s.WorkflowHistory = append(s.WorkflowHistory, domain.WorkflowEvent{
			EventType: eventType,
			Agent:     agent,
			Timestamp: at,
		})
	}
}

// NewTestProject builds a ProjectState snapshot for tests. Defaults to a
// planning-phase project with nothing in flight.
func NewTestProject(name string, opts ...ProjectOption) *domain.ProjectState {
	s := &domain.ProjectState{
		ProjectID:    uuid.New().String(),
		Name:         name,
		CurrentPhase: domain.PhasePlanning,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Learner options
type LearnerOption func(*domain.LearnerProgress)

func WithCompletedLessons(ids ...string) LearnerOption {
	return func(lp *domain.LearnerProgress) {
		lp.CompletedLessons = append(lp.CompletedLessons, ids...)
	}
}

func WithSkillLevel(skill domain.Skill, level int) LearnerOption {
	return func(lp *domain.LearnerProgress) {
		lp.SkillLevels[skill] = level
	}
}

// NewTestLearner builds a LearnerProgress record for tests, starting from
// the zeroed default.
func NewTestLearner(opts ...LearnerOption) *domain.LearnerProgress {
	lp := domain.DefaultProgress()
	for _, opt := range opts {
		opt(lp)
	}
	return lp
}

// NewTestObservation builds an Observation for tests.
func NewTestObservation(projectID, lessonID string, outcome domain.LearningOutcome, at time.Time) *domain.Observation {
	return &domain.Observation{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		LessonID:      lessonID,
		SkillsApplied: []domain.Skill{domain.SkillWorkflowManagement},
		Outcome:       outcome,
		Phase:         domain.PhaseDevelopment,
		TotalStories:  5,
		ObservedAt:    at,
	}
}
