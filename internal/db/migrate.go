package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the
// migration system re-runs all of them on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate re-applied ALTER TABLE statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS completed_lessons (
		lesson_id    TEXT PRIMARY KEY,
		completed_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS skill_levels (
		skill TEXT PRIMARY KEY,
		level INTEGER NOT NULL DEFAULT 0
		      CHECK(level >= 0 AND level <= 100)
	)`,

	`CREATE TABLE IF NOT EXISTS achievements (
		id        TEXT PRIMARY KEY,
		earned_at TEXT NOT NULL
	)`,

	// Single-row table for scalar learner stats.
	`CREATE TABLE IF NOT EXISTS learner_stats (
		id                  INTEGER PRIMARY KEY CHECK(id = 1),
		total_learning_time INTEGER NOT NULL DEFAULT 0,
		streak_days         INTEGER NOT NULL DEFAULT 0,
		last_active         TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS observations (
		id                TEXT PRIMARY KEY,
		project_id        TEXT NOT NULL,
		lesson_id         TEXT NOT NULL,
		skills_applied    TEXT NOT NULL DEFAULT '',
		outcome           TEXT NOT NULL
		                  CHECK(outcome IN ('success','partial','failed')),
		phase             TEXT NOT NULL,
		total_stories     INTEGER NOT NULL DEFAULT 0,
		completed_stories INTEGER NOT NULL DEFAULT 0,
		observed_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_observations_project
		ON observations(project_id, observed_at)`,

	`CREATE INDEX IF NOT EXISTS idx_observations_lesson
		ON observations(lesson_id)`,
}
