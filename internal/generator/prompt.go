package generator

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a scheduling assistant that plans realistic weekly calendars.
You respect the user's fixed commitments, wake and bed times, and stated routines.
Respond with a single JSON object and nothing else, in this shape:
{
  "events": [
    {"title": "...", "activity_type": "workout|meal|commute|chore|task|break|focus|podcast",
     "day": "Monday", "start": "09:00", "end": "10:00",
     "description": "", "is_flexible": true, "priority": 1, "suggested_podcast": ""}
  ],
  "reasoning": "one short paragraph",
  "confidence": 0.9
}
Never schedule over the fixed commitments listed by the user.`

// BuildPrompt renders the gathered context into the user prompt sent to a
// backend. The system prompt is fixed; everything user-specific goes here.
func BuildPrompt(gc Context) (system, user string) {
	var b strings.Builder

	fmt.Fprintf(&b, "Plan the week starting Monday %s (timezone %s).\n\n",
		gc.WeekStart.Format("2006-01-02"), gc.Location)

	c := gc.Constraints
	b.WriteString("Daily rhythm:\n")
	fmt.Fprintf(&b, "- wake: %s, bed: %s\n", orUnset(c.WakeTime), orUnset(c.BedTime))
	if len(c.WorkoutDays) > 0 {
		fmt.Fprintf(&b, "- workouts: %s, preferred time %s, duration %s\n",
			strings.Join(c.WorkoutDays, "/"), orUnset(c.WorkoutPreferredTime), orUnset(c.WorkoutDuration))
	}
	if c.CommuteStart != "" {
		fmt.Fprintf(&b, "- commute: %s to %s on weekdays\n", c.CommuteStart, c.CommuteEnd)
	}
	fmt.Fprintf(&b, "- lunch duration: %s\n", orUnset(c.MealDuration))
	fmt.Fprintf(&b, "- chores: %s, %s, duration %s\n",
		orUnset(c.ChoreTime), orUnset(c.ChoreDistribution), orUnset(c.ChoreDuration))
	if len(c.PodcastTopics) > 0 {
		fmt.Fprintf(&b, "- podcast topics: %s (suggest shows during commutes, chores and meals, never workouts)\n",
			strings.Join(c.PodcastTopics, ", "))
	}

	b.WriteString("\nFixed commitments (do not move or overlap these):\n")
	if len(gc.Busy) == 0 {
		b.WriteString("- none\n")
	}
	for _, ev := range gc.Busy {
		fmt.Fprintf(&b, "- %s %s-%s: %s [%s]\n",
			ev.Interval.Start.Weekday(),
			ev.Interval.Start.Format("15:04"), ev.Interval.End.Format("15:04"),
			ev.Title, ev.Tier)
	}

	b.WriteString("\nItems to place, most important first:\n")
	if len(gc.Items) == 0 {
		b.WriteString("- none\n")
	}
	for _, it := range gc.Items {
		fmt.Fprintf(&b, "- [p%d] %s (%d min, %s)\n", it.Priority, it.Text, it.DurationMin, it.Activity)
	}

	if len(gc.Workouts) > 0 {
		b.WriteString("\nWorkout plans to schedule on workout days:\n")
		for _, w := range gc.Workouts {
			if w.Completed {
				continue
			}
			fmt.Fprintf(&b, "- %s (%d min): %s\n", w.Title, w.DurationMin, w.ExerciseSummary())
		}
	}

	if gc.Modification != "" {
		fmt.Fprintf(&b, "\nThe user asked for this change to the previous schedule:\n%s\n", gc.Modification)
	}

	return systemPrompt, b.String()
}

func orUnset(s string) string {
	if s == "" {
		return "not set"
	}
	return s
}
