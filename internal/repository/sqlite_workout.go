package repository

import (
	"context"
	"fmt"

	"github.com/averyhall/tempo/internal/db"
	"github.com/averyhall/tempo/internal/domain"
)

// SQLiteWorkoutRepo implements WorkoutRepo using a SQLite database. Plans
// are stored relationally: one workouts row plus ordered exercise rows
// grouped by section title.
type SQLiteWorkoutRepo struct {
	db db.DBTX
}

// NewSQLiteWorkoutRepo creates a new SQLiteWorkoutRepo.
func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{db: conn}
}

func (r *SQLiteWorkoutRepo) SavePlan(ctx context.Context, userID string, w *domain.WorkoutPlan) error {
	query := `INSERT OR REPLACE INTO workouts (id, user_id, title, description,
		duration_min, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		userID,
		w.Title,
		w.Description,
		w.DurationMin,
		boolToInt(w.Completed),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("saving workout: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM workout_exercises WHERE workout_id = ?`, w.ID); err != nil {
		return fmt.Errorf("clearing workout exercises: %w", err)
	}

	order := 0
	for _, sec := range w.Sections {
		for _, ex := range sec.Exercises {
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO workout_exercises (workout_id, section, name, sets, reps, duration, order_index)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				w.ID, sec.Title, ex.Name, ex.Sets, ex.Reps, ex.Duration, order)
			if err != nil {
				return fmt.Errorf("saving workout exercise: %w", err)
			}
			order++
		}
	}
	return nil
}

func (r *SQLiteWorkoutRepo) ListPlans(ctx context.Context, userID string) ([]domain.WorkoutPlan, error) {
	query := `SELECT id, title, description, duration_min, completed
		FROM workouts WHERE user_id = ? ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing workouts: %w", err)
	}
	defer rows.Close()

	var plans []domain.WorkoutPlan
	for rows.Next() {
		var w domain.WorkoutPlan
		var completed int
		if err := rows.Scan(&w.ID, &w.Title, &w.Description, &w.DurationMin, &completed); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		w.Completed = intToBool(completed)
		plans = append(plans, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range plans {
		sections, err := r.loadSections(ctx, plans[i].ID)
		if err != nil {
			return nil, err
		}
		plans[i].Sections = sections
	}
	return plans, nil
}

func (r *SQLiteWorkoutRepo) loadSections(ctx context.Context, workoutID string) ([]domain.WorkoutSection, error) {
	query := `SELECT section, name, sets, reps, duration
		FROM workout_exercises WHERE workout_id = ? ORDER BY order_index ASC`
	rows, err := r.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("listing workout exercises: %w", err)
	}
	defer rows.Close()

	var sections []domain.WorkoutSection
	for rows.Next() {
		var section string
		var ex domain.Exercise
		if err := rows.Scan(&section, &ex.Name, &ex.Sets, &ex.Reps, &ex.Duration); err != nil {
			return nil, fmt.Errorf("scanning workout exercise: %w", err)
		}
		if len(sections) == 0 || sections[len(sections)-1].Title != section {
			sections = append(sections, domain.WorkoutSection{Title: section})
		}
		last := &sections[len(sections)-1]
		last.Exercises = append(last.Exercises, ex)
	}
	return sections, rows.Err()
}
