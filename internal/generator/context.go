// Package generator turns gathered user context into a draft weekly
// schedule via a chain of generative backends, validating every draft
// before the orchestrator will accept it.
package generator

import (
	"time"

	"github.com/averyhall/tempo/internal/domain"
)

// Context is everything a backend needs to draft one user's week. All
// timestamps are in Location; WeekStart is midnight on Monday.
type Context struct {
	UserID      string
	WeekStart   time.Time
	Location    *time.Location
	Constraints domain.UserConstraints
	Busy        []domain.BusyEvent
	Items       []domain.SchedulableItem
	Workouts    []domain.WorkoutPlan

	// Modification carries the user's free-text change request on
	// regeneration. Empty on a first run.
	Modification string
}
