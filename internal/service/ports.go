// Package service wires the scheduling engine together: it gathers user
// context, runs the provider chain with its deterministic fallback, and
// persists the outcome.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/averyhall/tempo/internal/domain"
)

// ErrCalendarNotConnected is returned by a CalendarReader when the user has
// no calendar linked. Generation treats it as an empty calendar, not a
// failure.
var ErrCalendarNotConnected = errors.New("calendar not connected")

// CalendarReader provides the user's existing commitments.
type CalendarReader interface {
	// BusyEvents returns events overlapping [from, to), in the calendar's
	// timezone.
	BusyEvents(ctx context.Context, userID string, from, to time.Time) ([]domain.BusyEvent, error)

	// Timezone returns the calendar's home timezone.
	Timezone(ctx context.Context, userID string) (*time.Location, error)
}

// ConstraintsReader provides the user's stored scheduling preferences.
type ConstraintsReader interface {
	Get(ctx context.Context, userID string) (*domain.UserConstraints, error)
}

// GoalSource yields this week's flexible items.
type GoalSource interface {
	ListOpen(ctx context.Context, userID string) ([]domain.SchedulableItem, error)
}

// WorkoutSource yields the user's workout plans.
type WorkoutSource interface {
	ListPlans(ctx context.Context, userID string) ([]domain.WorkoutPlan, error)
}

// EpisodeSource yields saved podcast episodes as schedulable items.
type EpisodeSource interface {
	ListUnplayed(ctx context.Context, userID string) ([]domain.SchedulableItem, error)
}
