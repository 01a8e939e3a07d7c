package repository

import (
	"context"
	"errors"
	"time"

	"github.com/averyhall/tempo/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type SuggestionRepo interface {
	Save(ctx context.Context, s *domain.ScheduleSuggestion) error
	GetByID(ctx context.Context, id string) (*domain.ScheduleSuggestion, error)
	// GetActive returns the most recent non-rejected suggestion for the
	// user and week, or ErrNotFound.
	GetActive(ctx context.Context, userID string, weekStart time.Time) (*domain.ScheduleSuggestion, error)
	UpdateStatus(ctx context.Context, id string, status domain.SuggestionStatus, appliedAt *time.Time) error
	ListByUser(ctx context.Context, userID string) ([]*domain.ScheduleSuggestion, error)
}

type HistoryRepo interface {
	Create(ctx context.Context, h *domain.ScheduleHistory) error
	ListByWeek(ctx context.Context, userID string, weekStart time.Time) ([]*domain.ScheduleHistory, error)
}

type FeedbackRepo interface {
	Create(ctx context.Context, userID string, f *domain.TaskFeedback) error
	ListByUser(ctx context.Context, userID string) ([]*domain.TaskFeedback, error)
}

type PreferenceRepo interface {
	// Get returns the stored constraints, or zero-valued constraints when
	// the user has never saved any.
	Get(ctx context.Context, userID string) (*domain.UserConstraints, error)
	Upsert(ctx context.Context, userID string, c *domain.UserConstraints) error
}

type GoalRepo interface {
	Create(ctx context.Context, userID string, item *domain.SchedulableItem) error
	ListOpen(ctx context.Context, userID string) ([]domain.SchedulableItem, error)
	MarkCompleted(ctx context.Context, id string) error
}

type WorkoutRepo interface {
	SavePlan(ctx context.Context, userID string, w *domain.WorkoutPlan) error
	ListPlans(ctx context.Context, userID string) ([]domain.WorkoutPlan, error)
}

type EpisodeRepo interface {
	Save(ctx context.Context, userID string, e *domain.Episode) error
	// ListUnplayed returns saved, not-yet-played episodes as schedulable items.
	ListUnplayed(ctx context.Context, userID string) ([]domain.SchedulableItem, error)
}
