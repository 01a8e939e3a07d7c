package repository

import (
	"context"
	"fmt"

	"github.com/averyhall/tempo/internal/db"
	"github.com/averyhall/tempo/internal/domain"
)

// SQLiteGoalRepo implements GoalRepo using a SQLite database.
type SQLiteGoalRepo struct {
	db db.DBTX
}

// NewSQLiteGoalRepo creates a new SQLiteGoalRepo.
func NewSQLiteGoalRepo(conn db.DBTX) *SQLiteGoalRepo {
	return &SQLiteGoalRepo{db: conn}
}

func (r *SQLiteGoalRepo) Create(ctx context.Context, userID string, item *domain.SchedulableItem) error {
	query := `INSERT INTO goals (id, user_id, text, description, duration_min,
		priority, activity_type, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		userID,
		item.Text,
		item.Description,
		item.DurationMin,
		item.Priority,
		string(item.Activity),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}
	return nil
}

func (r *SQLiteGoalRepo) ListOpen(ctx context.Context, userID string) ([]domain.SchedulableItem, error) {
	query := `SELECT id, text, description, duration_min, priority, activity_type
		FROM goals WHERE user_id = ? AND completed = 0
		ORDER BY priority ASC, created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var out []domain.SchedulableItem
	for rows.Next() {
		var it domain.SchedulableItem
		var activity string
		if err := rows.Scan(
			&it.ID,
			&it.Text,
			&it.Description,
			&it.DurationMin,
			&it.Priority,
			&activity,
		); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		it.Activity = domain.ActivityType(activity)
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *SQLiteGoalRepo) MarkCompleted(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE goals SET completed = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("completing goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("completing goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return nil
}
