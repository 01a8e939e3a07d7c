package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/averyhall/tempo/internal/domain"
)

// Placement pairs a schedulable item with the interval it was packed into.
type Placement struct {
	Item     domain.SchedulableItem
	Interval domain.TimeInterval
}

// PackResult is the outcome of one packing pass.
type PackResult struct {
	Placed   []Placement
	Unplaced []domain.UnplacedItem
}

// Pack places items into free slots greedily: items sorted by ascending
// priority, each taking the earliest span at or after a single forward-moving
// cursor, with a buffer advanced past every placement. The cursor never
// rewinds, so a lower-priority item can never start before one placed ahead
// of it. A failed item leaves the cursor where it is and is reported.
func Pack(items []domain.SchedulableItem, slots []domain.TimeInterval, buffer time.Duration) PackResult {
	ordered := make([]domain.SchedulableItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	var res PackResult
	idx := 0
	var cursor time.Time
	if len(slots) > 0 {
		cursor = slots[0].Start
	}

	for _, item := range ordered {
		need := time.Duration(item.DurationMin) * time.Minute
		placed := false
		for j := idx; j < len(slots); j++ {
			start := cursor
			if j > idx {
				start = slots[j].Start
			}
			if slots[j].End.Sub(start) < need {
				continue
			}
			iv := domain.NewInterval(start, start.Add(need))
			res.Placed = append(res.Placed, Placement{Item: item, Interval: iv})
			idx = j
			cursor = iv.End.Add(buffer)
			placed = true
			break
		}
		if placed {
			continue
		}

		var remaining time.Duration
		var largest time.Duration
		for j := idx; j < len(slots); j++ {
			start := cursor
			if j > idx {
				start = slots[j].Start
			}
			if free := slots[j].End.Sub(start); free > 0 {
				remaining += free
				if free > largest {
					largest = free
				}
			}
		}
		reason := domain.ReasonConflictsOnly
		detail := fmt.Sprintf("needs %dm but the largest open span is %dm", item.DurationMin, int(largest/time.Minute))
		if remaining < need {
			reason = domain.ReasonNoCapacity
			detail = fmt.Sprintf("needs %dm but only %dm of free time remains", item.DurationMin, int(remaining/time.Minute))
		}
		res.Unplaced = append(res.Unplaced, domain.UnplacedItem{
			ItemID:   item.ID,
			Title:    item.Text,
			Priority: item.Priority,
			Reason:   reason,
			Detail:   detail,
		})
	}
	return res
}
