package repository

import (
	"context"
	"fmt"

	"github.com/averyhall/tempo/internal/db"
	"github.com/averyhall/tempo/internal/domain"
)

// SQLiteEpisodeRepo implements EpisodeRepo using a SQLite database.
type SQLiteEpisodeRepo struct {
	db db.DBTX
}

// NewSQLiteEpisodeRepo creates a new SQLiteEpisodeRepo.
func NewSQLiteEpisodeRepo(conn db.DBTX) *SQLiteEpisodeRepo {
	return &SQLiteEpisodeRepo{db: conn}
}

func (r *SQLiteEpisodeRepo) Save(ctx context.Context, userID string, e *domain.Episode) error {
	query := `INSERT OR REPLACE INTO episodes (id, user_id, title, show, topic,
		duration_min, played, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		userID,
		e.Title,
		e.Show,
		e.Topic,
		e.DurationMin,
		boolToInt(e.Played),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("saving episode: %w", err)
	}
	return nil
}

func (r *SQLiteEpisodeRepo) ListUnplayed(ctx context.Context, userID string) ([]domain.SchedulableItem, error) {
	query := `SELECT id, title, show, duration_min
		FROM episodes WHERE user_id = ? AND played = 0 ORDER BY saved_at ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}
	defer rows.Close()

	var out []domain.SchedulableItem
	for rows.Next() {
		var id, title, show string
		var durationMin int
		if err := rows.Scan(&id, &title, &show, &durationMin); err != nil {
			return nil, fmt.Errorf("scanning episode: %w", err)
		}
		text := title
		if show != "" {
			text = fmt.Sprintf("%s (%s)", title, show)
		}
		out = append(out, domain.SchedulableItem{
			ID:          id,
			Text:        text,
			DurationMin: durationMin,
			// Listening time competes below goals and workouts.
			Priority: 4,
			Activity: domain.ActivityPodcast,
		})
	}
	return out, rows.Err()
}
