package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration list re-runs every statement.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS user_preferences (
		user_id                TEXT PRIMARY KEY,
		wake_time              TEXT NOT NULL DEFAULT '',
		bed_time               TEXT NOT NULL DEFAULT '',
		workout_days           TEXT NOT NULL DEFAULT '[]',
		workout_preferred_time TEXT NOT NULL DEFAULT '',
		workout_frequency      TEXT NOT NULL DEFAULT '',
		workout_duration       TEXT NOT NULL DEFAULT '',
		commute_start          TEXT NOT NULL DEFAULT '',
		commute_end            TEXT NOT NULL DEFAULT '',
		chore_time             TEXT NOT NULL DEFAULT '',
		chore_duration         TEXT NOT NULL DEFAULT '',
		chore_distribution     TEXT NOT NULL DEFAULT '',
		meal_duration          TEXT NOT NULL DEFAULT '',
		podcast_topics         TEXT NOT NULL DEFAULT '[]',
		timezone               TEXT NOT NULL DEFAULT '',
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		text          TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		duration_min  INTEGER NOT NULL,
		priority      INTEGER NOT NULL DEFAULT 1,
		activity_type TEXT NOT NULL DEFAULT 'task',
		completed     INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id)`,

	`CREATE TABLE IF NOT EXISTS workouts (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL DEFAULT 0,
		completed    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workouts_user ON workouts(user_id)`,

	`CREATE TABLE IF NOT EXISTS workout_exercises (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id  TEXT NOT NULL REFERENCES workouts(id) ON DELETE CASCADE,
		section     TEXT NOT NULL DEFAULT '',
		name        TEXT NOT NULL,
		sets        INTEGER NOT NULL DEFAULT 0,
		reps        INTEGER NOT NULL DEFAULT 0,
		duration    TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_workout_exercises_workout ON workout_exercises(workout_id)`,

	`CREATE TABLE IF NOT EXISTS episodes (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		title        TEXT NOT NULL,
		show         TEXT NOT NULL DEFAULT '',
		topic        TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL,
		played       INTEGER NOT NULL DEFAULT 0,
		saved_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_episodes_user ON episodes(user_id)`,

	`CREATE TABLE IF NOT EXISTS schedule_suggestions (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		week_start   TEXT NOT NULL,
		placements   TEXT NOT NULL DEFAULT '[]',
		unplaced     TEXT NOT NULL DEFAULT '[]',
		warnings     TEXT NOT NULL DEFAULT '[]',
		conflicts    TEXT NOT NULL DEFAULT '[]',
		reasoning    TEXT NOT NULL DEFAULT '',
		confidence   REAL NOT NULL DEFAULT 0,
		algorithm    TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'pending'
		             CHECK(status IN ('pending','accepted','rejected','partially_accepted')),
		generated_at TEXT NOT NULL,
		applied_at   TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_suggestions_user_week ON schedule_suggestions(user_id, week_start)`,

	`CREATE TABLE IF NOT EXISTS schedule_history (
		id                  TEXT PRIMARY KEY,
		user_id             TEXT NOT NULL,
		week_start          TEXT NOT NULL,
		change_type         TEXT NOT NULL,
		trigger_reason      TEXT NOT NULL DEFAULT '',
		previous_placements TEXT NOT NULL DEFAULT '[]',
		new_placements      TEXT NOT NULL DEFAULT '[]',
		feedback_items      INTEGER NOT NULL DEFAULT 0,
		calendar_changes    INTEGER NOT NULL DEFAULT 0,
		created_at          TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_user_week ON schedule_history(user_id, week_start)`,

	`CREATE TABLE IF NOT EXISTS task_feedback (
		id            TEXT PRIMARY KEY,
		user_id       TEXT NOT NULL,
		task_id       TEXT NOT NULL,
		estimated_min INTEGER NOT NULL DEFAULT 0,
		actual_min    INTEGER NOT NULL DEFAULT 0,
		completed     INTEGER NOT NULL DEFAULT 0,
		difficulty    INTEGER NOT NULL DEFAULT 0,
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_task_feedback_user ON task_feedback(user_id)`,
}
