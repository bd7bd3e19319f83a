package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmorland/bmadcoach/internal/db"
	"github.com/jmorland/bmadcoach/internal/domain"
)

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

func (r *SQLiteProgressRepo) Get(ctx context.Context) (*domain.LearnerProgress, error) {
	progress := domain.DefaultProgress()

	rows, err := r.db.QueryContext(ctx,
		`SELECT lesson_id FROM completed_lessons ORDER BY completed_at, lesson_id`)
	if err != nil {
		return nil, fmt.Errorf("listing completed lessons: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning completed lesson: %w", err)
		}
		progress.CompletedLessons = append(progress.CompletedLessons, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completed lessons: %w", err)
	}

	skillRows, err := r.db.QueryContext(ctx, `SELECT skill, level FROM skill_levels`)
	if err != nil {
		return nil, fmt.Errorf("listing skill levels: %w", err)
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var skill string
		var level int
		if err := skillRows.Scan(&skill, &level); err != nil {
			return nil, fmt.Errorf("scanning skill level: %w", err)
		}
		progress.SkillLevels[domain.Skill(skill)] = level
	}
	if err := skillRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating skill levels: %w", err)
	}

	achRows, err := r.db.QueryContext(ctx, `SELECT id FROM achievements ORDER BY earned_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing achievements: %w", err)
	}
	defer achRows.Close()
	for achRows.Next() {
		var id string
		if err := achRows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning achievement: %w", err)
		}
		progress.Achievements = append(progress.Achievements, id)
	}
	if err := achRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating achievements: %w", err)
	}

	var totalTime, streak int
	var lastActive sql.NullString
	err = r.db.QueryRowContext(ctx,
		`SELECT total_learning_time, streak_days, last_active FROM learner_stats WHERE id = 1`).
		Scan(&totalTime, &streak, &lastActive)
	switch {
	case err == sql.ErrNoRows:
		// fresh store
	case err != nil:
		return nil, fmt.Errorf("scanning learner stats: %w", err)
	default:
		progress.TotalLearningTime = totalTime
		progress.StreakDays = streak
		if lastActive.Valid {
			t, parseErr := time.Parse(time.RFC3339, lastActive.String)
			if parseErr != nil {
				return nil, fmt.Errorf("parsing last active: %w", parseErr)
			}
			progress.LastActive = &t
		}
	}

	return progress, nil
}

func (r *SQLiteProgressRepo) MarkCompleted(ctx context.Context, lessonID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO completed_lessons (lesson_id, completed_at) VALUES (?, ?)`,
		lessonID, at.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("marking lesson completed: %w", err)
	}
	return nil
}

func (r *SQLiteProgressRepo) BumpSkill(ctx context.Context, skill domain.Skill, delta int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO skill_levels (skill, level) VALUES (?, MIN(100, MAX(0, ?)))
		 ON CONFLICT(skill) DO UPDATE SET level = MIN(100, MAX(0, level + ?))`,
		string(skill), delta, delta)
	if err != nil {
		return fmt.Errorf("bumping skill %s: %w", skill, err)
	}
	return nil
}

func (r *SQLiteProgressRepo) Touch(ctx context.Context, at time.Time) error {
	stamp := at.UTC().Format(time.RFC3339)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO learner_stats (id, last_active) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET last_active = ?`,
		stamp, stamp)
	if err != nil {
		return fmt.Errorf("touching learner stats: %w", err)
	}
	return nil
}
