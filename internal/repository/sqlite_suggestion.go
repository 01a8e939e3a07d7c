package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/averyhall/tempo/internal/db"
	"github.com/averyhall/tempo/internal/domain"
)

// SQLiteSuggestionRepo implements SuggestionRepo using a SQLite database.
// Placement and warning lists are stored as JSON text columns; they are
// written once at generation time and only read back whole.
type SQLiteSuggestionRepo struct {
	db db.DBTX
}

// NewSQLiteSuggestionRepo creates a new SQLiteSuggestionRepo.
func NewSQLiteSuggestionRepo(conn db.DBTX) *SQLiteSuggestionRepo {
	return &SQLiteSuggestionRepo{db: conn}
}

func (r *SQLiteSuggestionRepo) Save(ctx context.Context, s *domain.ScheduleSuggestion) error {
	placements, err := marshalJSON(s.Placements)
	if err != nil {
		return err
	}
	unplaced, err := marshalJSON(s.Unplaced)
	if err != nil {
		return err
	}
	warnings, err := marshalJSON(s.Warnings)
	if err != nil {
		return err
	}
	conflicts, err := marshalJSON(s.Conflicts)
	if err != nil {
		return err
	}

	query := `INSERT INTO schedule_suggestions (id, user_id, week_start, placements,
		unplaced, warnings, conflicts, reasoning, confidence, algorithm, status,
		generated_at, applied_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		weekKey(s.WeekStart),
		placements,
		unplaced,
		warnings,
		conflicts,
		s.Reasoning,
		s.Confidence,
		s.Algorithm,
		string(s.Status),
		s.GeneratedAt.UTC().Format(time.RFC3339),
		nullableTimeToString(s.AppliedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving suggestion: %w", err)
	}
	return nil
}

const suggestionColumns = `id, user_id, week_start, placements, unplaced, warnings,
	conflicts, reasoning, confidence, algorithm, status, generated_at, applied_at`

func (r *SQLiteSuggestionRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleSuggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM schedule_suggestions WHERE id = ?`
	s, err := scanSuggestion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("suggestion %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSuggestionRepo) GetActive(ctx context.Context, userID string, weekStart time.Time) (*domain.ScheduleSuggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM schedule_suggestions
		WHERE user_id = ? AND week_start = ? AND status != 'rejected'
		ORDER BY generated_at DESC LIMIT 1`
	s, err := scanSuggestion(r.db.QueryRowContext(ctx, query, userID, weekKey(weekStart)))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("active suggestion for week %s: %w", weekKey(weekStart), ErrNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (r *SQLiteSuggestionRepo) UpdateStatus(ctx context.Context, id string, status domain.SuggestionStatus, appliedAt *time.Time) error {
	query := `UPDATE schedule_suggestions SET status = ?, applied_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), nullableTimeToString(appliedAt, time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("updating suggestion status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating suggestion status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("suggestion %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteSuggestionRepo) ListByUser(ctx context.Context, userID string) ([]*domain.ScheduleSuggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM schedule_suggestions
		WHERE user_id = ? ORDER BY week_start DESC, generated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing suggestions: %w", err)
	}
	defer rows.Close()

	var out []*domain.ScheduleSuggestion
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSuggestion(row rowScanner) (*domain.ScheduleSuggestion, error) {
	var s domain.ScheduleSuggestion
	var weekStart, placements, unplaced, warnings, conflicts, status, generatedAt string
	var appliedAt sql.NullString

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&weekStart,
		&placements,
		&unplaced,
		&warnings,
		&conflicts,
		&s.Reasoning,
		&s.Confidence,
		&s.Algorithm,
		&status,
		&generatedAt,
		&appliedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning suggestion: %w", err)
	}

	s.WeekStart, err = time.Parse(dateLayout, weekStart)
	if err != nil {
		return nil, fmt.Errorf("parsing week start: %w", err)
	}
	s.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing generated_at: %w", err)
	}
	s.Status = domain.SuggestionStatus(status)
	s.AppliedAt = parseNullableTime(appliedAt, time.RFC3339)

	if err := unmarshalJSON(placements, &s.Placements); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(unplaced, &s.Unplaced); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(warnings, &s.Warnings); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(conflicts, &s.Conflicts); err != nil {
		return nil, err
	}
	return &s, nil
}
