package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/averyhall/tempo/internal/db"
	"github.com/averyhall/tempo/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) Create(ctx context.Context, h *domain.ScheduleHistory) error {
	previous, err := marshalJSON(h.Previous)
	if err != nil {
		return err
	}
	next, err := marshalJSON(h.New)
	if err != nil {
		return err
	}

	query := `INSERT INTO schedule_history (id, user_id, week_start, change_type,
		trigger_reason, previous_placements, new_placements, feedback_items,
		calendar_changes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		h.ID,
		h.UserID,
		weekKey(h.WeekStart),
		string(h.ChangeType),
		string(h.Trigger),
		previous,
		next,
		h.Summary.FeedbackItems,
		h.Summary.CalendarChanges,
		h.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("creating history entry: %w", err)
	}
	return nil
}

func (r *SQLiteHistoryRepo) ListByWeek(ctx context.Context, userID string, weekStart time.Time) ([]*domain.ScheduleHistory, error) {
	query := `SELECT id, user_id, week_start, change_type, trigger_reason,
		previous_placements, new_placements, feedback_items, calendar_changes, created_at
		FROM schedule_history WHERE user_id = ? AND week_start = ?
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID, weekKey(weekStart))
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var out []*domain.ScheduleHistory
	for rows.Next() {
		var h domain.ScheduleHistory
		var week, changeType, trigger, previous, next, createdAt string
		if err := rows.Scan(
			&h.ID,
			&h.UserID,
			&week,
			&changeType,
			&trigger,
			&previous,
			&next,
			&h.Summary.FeedbackItems,
			&h.Summary.CalendarChanges,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		h.WeekStart, err = time.Parse(dateLayout, week)
		if err != nil {
			return nil, fmt.Errorf("parsing week start: %w", err)
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		h.ChangeType = domain.ChangeType(changeType)
		h.Trigger = domain.RebalanceTrigger(trigger)
		if err := unmarshalJSON(previous, &h.Previous); err != nil {
			return nil, err
		}
		if err := unmarshalJSON(next, &h.New); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}
