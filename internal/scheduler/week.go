package scheduler

import (
	"fmt"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/timeparse"
)

const (
	// slotBuffer keeps free slots clear of busy-event edges.
	slotBuffer = 10 * time.Minute
	// packBuffer separates consecutive packed items.
	packBuffer = 5 * time.Minute

	fallbackConfidence = 0.5
)

var (
	defaultWake = timeparse.ClockTime{Hour: 8}
	defaultBed  = timeparse.ClockTime{Hour: 22}
)

// WeekInput is everything the deterministic builder needs for one week.
// WeekStart must be midnight on Monday in the user's timezone; all busy
// events and resulting placements share that location.
type WeekInput struct {
	Constraints domain.UserConstraints
	WeekStart   time.Time
	Busy        []domain.BusyEvent
	Items       []domain.SchedulableItem
	Workouts    []domain.WorkoutPlan
}

// WeekResult is a complete deterministic schedule for one week.
type WeekResult struct {
	Placements []domain.ScheduledPlacement
	Unplaced   []domain.UnplacedItem
	Warnings   []domain.Warning
	Reasoning  string
	Confidence float64
}

// BuildWeek produces a full week deterministically: recurring routine first,
// then flexible items packed into whatever free time remains, in priority
// order across the week. It never fails; anything that cannot land is
// reported in Unplaced or Warnings.
func BuildWeek(in WeekInput) WeekResult {
	wake := timeparse.ClockOr(in.Constraints.WakeTime, defaultWake)
	bed := timeparse.ClockOr(in.Constraints.BedTime, defaultBed)
	if bed.MinuteOfDay() <= wake.MinuteOfDay() {
		// A bed time at or before wake means sleep after midnight. Days never
		// cross midnight here, so the window is clipped at 23:00 instead of
		// the day boundary, leaving the late evening usable.
		bed = timeparse.ClockTime{Hour: 23}
	}
	window := func(day time.Time) DayWindow {
		return DayWindow{
			Wake: time.Date(day.Year(), day.Month(), day.Day(), wake.Hour, wake.Minute, 0, 0, day.Location()),
			Bed:  time.Date(day.Year(), day.Month(), day.Day(), bed.Hour, bed.Minute, 0, 0, day.Location()),
		}
	}

	placements, unplaced, warnings := PlaceRecurring(in.Constraints, in.WeekStart, window, in.Busy, in.Workouts)

	occupied := make([]domain.BusyEvent, 0, len(in.Busy)+len(placements))
	occupied = append(occupied, in.Busy...)
	for _, pl := range placements {
		occupied = append(occupied, domain.BusyEvent{Interval: pl.Interval(), Title: pl.Title, Tier: domain.TierNormal})
	}

	var slots []domain.TimeInterval
	for i := 0; i < 7; i++ {
		day := in.WeekStart.AddDate(0, 0, i)
		slots = append(slots, AvailableSlots(window(day), occupied, slotBuffer)...)
	}

	packed := Pack(in.Items, slots, packBuffer)
	for _, pl := range packed.Placed {
		placements = append(placements, domain.ScheduledPlacement{
			ItemID:      pl.Item.ID,
			Title:       pl.Item.Text,
			Activity:    pl.Item.Activity,
			Day:         pl.Interval.Start.Weekday().String(),
			Start:       pl.Interval.Start,
			End:         pl.Interval.End,
			Description: pl.Item.Description,
			IsFlexible:  true,
			Priority:    pl.Item.Priority,
		})
	}

	return WeekResult{
		Placements: placements,
		Unplaced:   append(unplaced, packed.Unplaced...),
		Warnings:   warnings,
		Reasoning: fmt.Sprintf(
			"Rule-based schedule: placed %d of %d flexible items around %d fixed commitments, waking at %s and winding down at %s.",
			len(packed.Placed), len(in.Items), len(in.Busy), wake, bed),
		Confidence: fallbackConfidence,
	}
}
