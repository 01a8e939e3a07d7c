// Package scheduler implements the deterministic scheduling core: free-slot
// computation, conflict detection, priority packing, and recurring-activity
// placement. Everything here is pure; failures are reported as data
// (unplaced items, warnings) rather than errors.
package scheduler

import (
	"sort"
	"time"

	"github.com/averyhall/tempo/internal/domain"
)

// DayWindow bounds one day's schedulable time.
type DayWindow struct {
	Wake time.Time
	Bed  time.Time
}

// AvailableSlots computes the free intervals in the window after carving out
// busy events, with a buffer of breathing room on both sides of each event.
// Events outside the window are ignored; events straddling its edges are
// clipped. A degenerate window (bed not after wake) yields no slots.
func AvailableSlots(window DayWindow, busy []domain.BusyEvent, buffer time.Duration) []domain.TimeInterval {
	if !window.Wake.Before(window.Bed) {
		return nil
	}

	clipped := make([]domain.TimeInterval, 0, len(busy))
	bounds := domain.NewInterval(window.Wake, window.Bed)
	for _, ev := range busy {
		if iv, ok := ev.Interval.Clip(bounds); ok {
			clipped = append(clipped, iv)
		}
	}
	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].Start.Before(clipped[j].Start)
	})

	var slots []domain.TimeInterval
	cursor := window.Wake
	for _, iv := range clipped {
		free := iv.Start.Add(-buffer)
		if free.After(cursor) {
			slots = append(slots, domain.NewInterval(cursor, free))
		}
		next := iv.End.Add(buffer)
		if next.After(cursor) {
			cursor = next
		}
	}
	if cursor.Before(window.Bed) {
		slots = append(slots, domain.NewInterval(cursor, window.Bed))
	}
	return slots
}
