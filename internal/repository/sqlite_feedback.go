package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/averyhall/tempo/internal/db"
	"github.com/averyhall/tempo/internal/domain"
)

// SQLiteFeedbackRepo implements FeedbackRepo using a SQLite database.
type SQLiteFeedbackRepo struct {
	db db.DBTX
}

// NewSQLiteFeedbackRepo creates a new SQLiteFeedbackRepo.
func NewSQLiteFeedbackRepo(conn db.DBTX) *SQLiteFeedbackRepo {
	return &SQLiteFeedbackRepo{db: conn}
}

func (r *SQLiteFeedbackRepo) Create(ctx context.Context, userID string, f *domain.TaskFeedback) error {
	query := `INSERT INTO task_feedback (id, user_id, task_id, estimated_min,
		actual_min, completed, difficulty, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(),
		userID,
		f.TaskID,
		f.EstimatedMinutes,
		f.ActualMinutes,
		boolToInt(f.Completed),
		f.DifficultyRating,
		f.Notes,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("creating task feedback: %w", err)
	}
	return nil
}

func (r *SQLiteFeedbackRepo) ListByUser(ctx context.Context, userID string) ([]*domain.TaskFeedback, error) {
	query := `SELECT task_id, estimated_min, actual_min, completed, difficulty, notes
		FROM task_feedback WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing task feedback: %w", err)
	}
	defer rows.Close()

	var out []*domain.TaskFeedback
	for rows.Next() {
		var f domain.TaskFeedback
		var completed int
		if err := rows.Scan(
			&f.TaskID,
			&f.EstimatedMinutes,
			&f.ActualMinutes,
			&completed,
			&f.DifficultyRating,
			&f.Notes,
		); err != nil {
			return nil, fmt.Errorf("scanning task feedback: %w", err)
		}
		f.Completed = intToBool(completed)
		out = append(out, &f)
	}
	return out, rows.Err()
}
