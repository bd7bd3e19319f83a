package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmorland/bmadcoach/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ProgressRepo stores the learner's mastery record.
type ProgressRepo interface {
	// Get assembles the full progress snapshot. An empty store yields the
	// default zeroed record, not an error.
	Get(ctx context.Context) (*domain.LearnerProgress, error)
	// MarkCompleted records a completed lesson (idempotent).
	MarkCompleted(ctx context.Context, lessonID string, at time.Time) error
	// BumpSkill raises a skill level by delta, clamped to [0,100].
	BumpSkill(ctx context.Context, skill domain.Skill, delta int) error
	// Touch updates the last-active timestamp.
	Touch(ctx context.Context, at time.Time) error
}

// ObservationRepo stores learning observations.
type ObservationRepo interface {
	Record(ctx context.Context, obs *domain.Observation) error
	// ListRecent returns the newest observations first, bounded by limit.
	ListRecent(ctx context.Context, limit int) ([]*domain.Observation, error)
	// ListByProject returns a project's observations, newest first.
	ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Observation, error)
}
