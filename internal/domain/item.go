package domain

import (
	"fmt"
	"strings"
)

// SchedulableItem is one unit of work to place: a weekly goal, a workout
// from the user's plan, or a saved podcast episode. Items are supplied fresh
// per generation call; only the resulting placement is stored.
type SchedulableItem struct {
	ID          string
	Text        string
	DurationMin int
	// Priority ranks items for packing; lower is more important, 1-based.
	Priority    int
	Activity    ActivityType
	Description string
	// PlanID links the item to a parent plan (a workout or a podcast series)
	// when one exists.
	PlanID string
}

// Episode is a saved podcast episode the user wants listening time for.
type Episode struct {
	ID          string
	Title       string
	Show        string
	Topic       string
	DurationMin int
	Played      bool
}

// WorkoutPlan is a user-authored workout with its sections and exercises.
// Plans feed both the prompt context and the deterministic placer, which
// embeds the full exercise list in the placement description.
type WorkoutPlan struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	DurationMin int
	Sections    []WorkoutSection
}

type WorkoutSection struct {
	Title     string
	Exercises []Exercise
}

type Exercise struct {
	Name     string
	Sets     int
	Reps     int
	Duration string
}

// ExerciseSummary flattens all exercises into a single display line, e.g.
// "Squats: 3 sets × 12 reps, Plank: 60s".
func (p WorkoutPlan) ExerciseSummary() string {
	var parts []string
	for _, sec := range p.Sections {
		for _, ex := range sec.Exercises {
			switch {
			case ex.Sets > 0 && ex.Reps > 0:
				parts = append(parts, fmt.Sprintf("%s: %d sets × %d reps", ex.Name, ex.Sets, ex.Reps))
			case ex.Duration != "":
				parts = append(parts, fmt.Sprintf("%s: %s", ex.Name, ex.Duration))
			default:
				parts = append(parts, ex.Name)
			}
		}
	}
	return strings.Join(parts, ", ")
}

// PlacementDescription builds the description embedded in a scheduled
// workout so the user sees the complete routine on the event itself.
func (p WorkoutPlan) PlacementDescription() string {
	var b strings.Builder
	if p.Description != "" {
		b.WriteString(p.Description)
	}
	if summary := p.ExerciseSummary(); summary != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("Exercises: ")
		b.WriteString(summary)
	}
	return b.String()
}
