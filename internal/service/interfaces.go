package service

import (
	"context"
	"time"

	"github.com/averyhall/tempo/internal/domain"
)

// GenerateRequest asks for a schedule for one user and week. WeekStart may
// be any moment in the target week; it is normalized to Monday midnight in
// the user's calendar timezone.
type GenerateRequest struct {
	UserID    string
	WeekStart time.Time

	// Force regenerates even when an active suggestion already exists.
	Force bool

	// Modification is the user's free-text change request; it reaches the
	// generative backends only.
	Modification string
}

// ScheduleStatus summarizes the active suggestion for a week.
type ScheduleStatus struct {
	HasSchedule    bool
	Status         domain.SuggestionStatus
	Algorithm      string
	Placements     int
	Unplaced       int
	CompletionRate float64
	GeneratedAt    time.Time
}

type ScheduleService interface {
	// Generate produces (or returns the existing) suggestion for the week.
	Generate(ctx context.Context, req GenerateRequest) (*domain.ScheduleSuggestion, error)

	GetStatus(ctx context.Context, userID string, weekStart time.Time) (*ScheduleStatus, error)
}

type RebalanceService interface {
	// Rebalance archives the current week's suggestion and regenerates it
	// in response to task feedback or calendar changes.
	Rebalance(ctx context.Context, userID string, feedback []domain.TaskFeedback, changes []domain.CalendarChange) (*domain.ScheduleSuggestion, error)
}

type FeedbackService interface {
	Submit(ctx context.Context, userID string, f *domain.TaskFeedback) error
}
