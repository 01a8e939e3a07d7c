package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/averyhall/tempo/internal/db"
	"github.com/averyhall/tempo/internal/domain"
)

// SQLitePreferenceRepo implements PreferenceRepo using a SQLite database.
type SQLitePreferenceRepo struct {
	db db.DBTX
}

// NewSQLitePreferenceRepo creates a new SQLitePreferenceRepo.
func NewSQLitePreferenceRepo(conn db.DBTX) *SQLitePreferenceRepo {
	return &SQLitePreferenceRepo{db: conn}
}

func (r *SQLitePreferenceRepo) Get(ctx context.Context, userID string) (*domain.UserConstraints, error) {
	query := `SELECT wake_time, bed_time, workout_days, workout_preferred_time,
		workout_frequency, workout_duration, commute_start, commute_end,
		chore_time, chore_duration, chore_distribution, meal_duration,
		podcast_topics, timezone
		FROM user_preferences WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var c domain.UserConstraints
	var workoutDays, podcastTopics string
	err := row.Scan(
		&c.WakeTime,
		&c.BedTime,
		&workoutDays,
		&c.WorkoutPreferredTime,
		&c.WorkoutFrequency,
		&c.WorkoutDuration,
		&c.CommuteStart,
		&c.CommuteEnd,
		&c.ChoreTime,
		&c.ChoreDuration,
		&c.ChoreDistribution,
		&c.MealDuration,
		&podcastTopics,
		&c.Timezone,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// Never-configured users schedule with pure defaults.
			return &domain.UserConstraints{}, nil
		}
		return nil, fmt.Errorf("scanning user preferences: %w", err)
	}

	if err := unmarshalJSON(workoutDays, &c.WorkoutDays); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(podcastTopics, &c.PodcastTopics); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQLitePreferenceRepo) Upsert(ctx context.Context, userID string, c *domain.UserConstraints) error {
	workoutDays, err := marshalJSON(c.WorkoutDays)
	if err != nil {
		return err
	}
	podcastTopics, err := marshalJSON(c.PodcastTopics)
	if err != nil {
		return err
	}

	query := `INSERT OR REPLACE INTO user_preferences (user_id, wake_time, bed_time,
		workout_days, workout_preferred_time, workout_frequency, workout_duration,
		commute_start, commute_end, chore_time, chore_duration, chore_distribution,
		meal_duration, podcast_topics, timezone, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		userID,
		c.WakeTime,
		c.BedTime,
		workoutDays,
		c.WorkoutPreferredTime,
		c.WorkoutFrequency,
		c.WorkoutDuration,
		c.CommuteStart,
		c.CommuteEnd,
		c.ChoreTime,
		c.ChoreDuration,
		c.ChoreDistribution,
		c.MealDuration,
		podcastTopics,
		c.Timezone,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting user preferences: %w", err)
	}
	return nil
}
