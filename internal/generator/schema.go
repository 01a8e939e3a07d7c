package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/timeparse"
)

// draftSchedule is the JSON shape backends are instructed to return.
type draftSchedule struct {
	Events     []draftEvent `json:"events"`
	Reasoning  string       `json:"reasoning"`
	Confidence float64      `json:"confidence"`
}

type draftEvent struct {
	Title            string `json:"title"`
	ActivityType     string `json:"activity_type"`
	Day              string `json:"day"`
	Start            string `json:"start"`
	End              string `json:"end"`
	Description      string `json:"description"`
	IsFlexible       bool   `json:"is_flexible"`
	Priority         int    `json:"priority"`
	SuggestedPodcast string `json:"suggested_podcast"`
	ItemID           string `json:"item_id"`
}

var dayOffsets = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
}

// validateDraft checks structural soundness before any interval math runs.
func validateDraft(d draftSchedule) error {
	if len(d.Events) == 0 {
		return fmt.Errorf("draft has no events")
	}
	if d.Confidence < 0 || d.Confidence > 1 {
		return fmt.Errorf("confidence %v out of range", d.Confidence)
	}
	for i, ev := range d.Events {
		if ev.Title == "" {
			return fmt.Errorf("event %d has no title", i)
		}
		if !domain.ValidActivityTypes[ev.ActivityType] {
			return fmt.Errorf("event %d has unknown activity type %q", i, ev.ActivityType)
		}
		if _, ok := dayOffsets[lower(ev.Day)]; !ok {
			return fmt.Errorf("event %d has unknown day %q", i, ev.Day)
		}
		start, err := timeparse.ParseClock(ev.Start)
		if err != nil {
			return fmt.Errorf("event %d: %v", i, err)
		}
		end, err := timeparse.ParseClock(ev.End)
		if err != nil {
			return fmt.Errorf("event %d: %v", i, err)
		}
		if end.MinuteOfDay() <= start.MinuteOfDay() {
			return fmt.Errorf("event %d ends at or before its start", i)
		}
	}
	return nil
}

// toPlacements anchors draft events onto concrete timestamps in the week.
func (d draftSchedule) toPlacements(weekStart time.Time, loc *time.Location) []domain.ScheduledPlacement {
	out := make([]domain.ScheduledPlacement, 0, len(d.Events))
	for _, ev := range d.Events {
		day := weekStart.AddDate(0, 0, dayOffsets[lower(ev.Day)])
		start, _ := timeparse.ParseClock(ev.Start)
		end, _ := timeparse.ParseClock(ev.End)
		out = append(out, domain.ScheduledPlacement{
			ItemID:           ev.ItemID,
			Title:            ev.Title,
			Activity:         domain.ActivityType(ev.ActivityType),
			Day:              day.Weekday().String(),
			Start:            time.Date(day.Year(), day.Month(), day.Day(), start.Hour, start.Minute, 0, 0, loc),
			End:              time.Date(day.Year(), day.Month(), day.Day(), end.Hour, end.Minute, 0, 0, loc),
			Description:      ev.Description,
			IsFlexible:       ev.IsFlexible,
			Priority:         ev.Priority,
			SuggestedPodcast: ev.SuggestedPodcast,
		})
	}
	return out
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
