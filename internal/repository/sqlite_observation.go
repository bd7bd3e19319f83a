package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmorland/bmadcoach/internal/db"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// SQLiteObservationRepo implements ObservationRepo using a SQLite database.
type SQLiteObservationRepo struct {
	db db.DBTX
}

// NewSQLiteObservationRepo creates a new SQLiteObservationRepo.
func NewSQLiteObservationRepo(conn db.DBTX) *SQLiteObservationRepo {
	return &SQLiteObservationRepo{db: conn}
}

func (r *SQLiteObservationRepo) Record(ctx context.Context, obs *domain.Observation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO observations
			(id, project_id, lesson_id, skills_applied, outcome, phase,
			 total_stories, completed_stories, observed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		obs.ID,
		obs.ProjectID,
		obs.LessonID,
		joinSkills(obs.SkillsApplied),
		string(obs.Outcome),
		string(obs.Phase),
		obs.TotalStories,
		obs.CompletedStories,
		obs.ObservedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording observation: %w", err)
	}
	return nil
}

func (r *SQLiteObservationRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Observation, error) {
	return r.list(ctx,
		`SELECT id, project_id, lesson_id, skills_applied, outcome, phase,
			total_stories, completed_stories, observed_at
		 FROM observations ORDER BY observed_at DESC, id LIMIT ?`, limit)
}

func (r *SQLiteObservationRepo) ListByProject(ctx context.Context, projectID string, limit int) ([]*domain.Observation, error) {
	return r.list(ctx,
		`SELECT id, project_id, lesson_id, skills_applied, outcome, phase,
			total_stories, completed_stories, observed_at
		 FROM observations WHERE project_id = ?
		 ORDER BY observed_at DESC, id LIMIT ?`, projectID, limit)
}

func (r *SQLiteObservationRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Observation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing observations: %w", err)
	}
	defer rows.Close()

	var out []*domain.Observation
	for rows.Next() {
		var obs domain.Observation
		var skills, outcome, phase, observedAt string
		if err := rows.Scan(
			&obs.ID, &obs.ProjectID, &obs.LessonID, &skills, &outcome, &phase,
			&obs.TotalStories, &obs.CompletedStories, &observedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning observation: %w", err)
		}
		obs.SkillsApplied = splitSkills(skills)
		obs.Outcome = domain.LearningOutcome(outcome)
		obs.Phase = domain.Phase(phase)
		t, parseErr := time.Parse(time.RFC3339, observedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing observation time: %w", parseErr)
		}
		obs.ObservedAt = t
		out = append(out, &obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating observations: %w", err)
	}
	return out, nil
}

func joinSkills(skills []domain.Skill) string {
	parts := make([]string, len(skills))
	for i, s := range skills {
		parts[i] = string(s)
	}
	return strings.Join(parts, ",")
}

func splitSkills(s string) []domain.Skill {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	skills := make([]domain.Skill, len(parts))
	for i, p := range parts {
		skills[i] = domain.Skill(p)
	}
	return skills
}
