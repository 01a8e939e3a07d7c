package scheduler

import (
	"testing"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func stdWindow(day time.Time) DayWindow {
	return DayWindow{
		Wake: time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, day.Location()),
		Bed:  time.Date(day.Year(), day.Month(), day.Day(), 22, 0, 0, 0, day.Location()),
	}
}

func byTitle(placed []domain.ScheduledPlacement, title string) []domain.ScheduledPlacement {
	var out []domain.ScheduledPlacement
	for _, p := range placed {
		if p.Title == title {
			out = append(out, p)
		}
	}
	return out
}

func TestPlaceRecurring_WorkoutsOnConfiguredDays(t *testing.T) {
	c := domain.UserConstraints{
		WorkoutDays:          []string{"Monday", "Thursday"},
		WorkoutPreferredTime: "Morning",
	}
	plans := []domain.WorkoutPlan{
		{ID: "w1", Title: "Push Day", DurationMin: 50, Sections: []domain.WorkoutSection{
			{Title: "Main", Exercises: []domain.Exercise{{Name: "Bench", Sets: 3, Reps: 10}}},
		}},
	}

	placed, _, _ := PlaceRecurring(c, monday, stdWindow, nil, plans)

	workouts := byTitle(placed, "Push Day")
	require.Len(t, workouts, 2)
	assert.Equal(t, "Monday", workouts[0].Day)
	assert.Equal(t, "Thursday", workouts[1].Day)
	// Morning preference resolves to 07:00, lifted to the 08:00 wake time.
	assert.Equal(t, 8, workouts[0].Start.Hour())
	assert.Equal(t, 50, workouts[0].Interval().Minutes())
	assert.Contains(t, workouts[0].Description, "Bench: 3 sets × 10 reps")
	assert.Empty(t, workouts[0].SuggestedPodcast, "workouts never carry a podcast")
}

func TestPlaceRecurring_EveningWorkoutDefaultDuration(t *testing.T) {
	c := domain.UserConstraints{
		WorkoutDays:          []string{"Tuesday"},
		WorkoutPreferredTime: "Evening",
	}
	plans := []domain.WorkoutPlan{{ID: "w1", Title: "Run"}}

	placed, _, _ := PlaceRecurring(c, monday, stdWindow, nil, plans)

	runs := byTitle(placed, "Run")
	require.Len(t, runs, 1)
	assert.Equal(t, 18, runs[0].Start.Hour())
	assert.Equal(t, 45, runs[0].Interval().Minutes())
}

func TestPlaceRecurring_NoPlansNoWorkouts(t *testing.T) {
	c := domain.UserConstraints{
		WorkoutDays: []string{"Monday", "Wednesday"},
	}
	done := []domain.WorkoutPlan{{ID: "w1", Title: "Old", Completed: true}}

	placed, _, _ := PlaceRecurring(c, monday, stdWindow, nil, done)

	for _, p := range placed {
		assert.NotEqual(t, domain.ActivityWorkout, p.Activity)
	}
}

func TestPlaceRecurring_CommuteWeekdaysWithPodcast(t *testing.T) {
	c := domain.UserConstraints{
		CommuteStart:  "8:30",
		CommuteEnd:    "9:00",
		PodcastTopics: []string{"technology"},
	}

	placed, _, _ := PlaceRecurring(c, monday, stdWindow, nil, nil)

	commutes := byTitle(placed, "Commute")
	require.Len(t, commutes, 5)
	for _, cm := range commutes {
		assert.Equal(t, 30, cm.Interval().Minutes())
		assert.False(t, cm.IsFlexible)
		assert.Equal(t, "Hard Fork", cm.SuggestedPodcast)
	}
	assert.Equal(t, "Monday", commutes[0].Day)
	assert.Equal(t, "Friday", commutes[4].Day)
}

func TestPlaceRecurring_LunchEveryWeekday(t *testing.T) {
	placed, _, _ := PlaceRecurring(domain.UserConstraints{}, monday, stdWindow, nil, nil)

	lunches := byTitle(placed, "Lunch")
	require.Len(t, lunches, 5)
	assert.Equal(t, 12, lunches[0].Start.Hour())
	assert.Equal(t, 30, lunches[0].Start.Minute())
	assert.Equal(t, 30, lunches[0].Interval().Minutes())
}

func TestPlaceRecurring_MealDurationOverride(t *testing.T) {
	c := domain.UserConstraints{MealDuration: "45m"}

	placed, _, _ := PlaceRecurring(c, monday, stdWindow, nil, nil)

	lunches := byTitle(placed, "Lunch")
	require.NotEmpty(t, lunches)
	assert.Equal(t, 45, lunches[0].Interval().Minutes())
}

func TestPlaceRecurring_ChoresOneWeekendSession(t *testing.T) {
	c := domain.UserConstraints{
		ChoreTime:         "weekend mornings",
		ChoreDistribution: "one_session",
		ChoreDuration:     "1h 30m",
	}

	placed, _, _ := PlaceRecurring(c, monday, stdWindow, nil, nil)

	chores := byTitle(placed, "Chores")
	require.Len(t, chores, 1)
	assert.Equal(t, "Saturday", chores[0].Day)
	assert.Equal(t, 10, chores[0].Start.Hour())
	assert.Equal(t, 90, chores[0].Interval().Minutes())
}

func TestPlaceRecurring_ChoresDistributedWeekdays(t *testing.T) {
	c := domain.UserConstraints{
		ChoreTime:         "weekday evenings",
		ChoreDistribution: "distributed",
		ChoreDuration:     "90m",
	}

	placed, _, _ := PlaceRecurring(c, monday, stdWindow, nil, nil)

	chores := byTitle(placed, "Chores")
	require.Len(t, chores, 3)
	assert.Equal(t, "Monday", chores[0].Day)
	assert.Equal(t, "Wednesday", chores[1].Day)
	assert.Equal(t, "Friday", chores[2].Day)
	for _, ch := range chores {
		assert.Equal(t, 18, ch.Start.Hour())
		assert.Equal(t, 30, ch.Interval().Minutes(), "90 minutes split across three sessions")
	}
}

func TestPlaceRecurring_ChoreDurationDefault(t *testing.T) {
	c := domain.UserConstraints{ChoreDuration: "whenever"}

	placed, _, _ := PlaceRecurring(c, monday, stdWindow, nil, nil)

	chores := byTitle(placed, "Chores")
	require.Len(t, chores, 1)
	assert.Equal(t, 60, chores[0].Interval().Minutes())
}

func TestPlaceRecurring_ConflictingCandidateDropped(t *testing.T) {
	c := domain.UserConstraints{
		WorkoutDays:          []string{"Monday"},
		WorkoutPreferredTime: "Evening",
	}
	plans := []domain.WorkoutPlan{{ID: "w1", Title: "Lift"}}
	events := []domain.BusyEvent{{
		Interval: domain.NewInterval(
			time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)),
		Title: "Dinner",
		Tier:  domain.TierHigh,
	}}

	placed, unplaced, _ := PlaceRecurring(c, monday, stdWindow, events, plans)

	assert.Empty(t, byTitle(placed, "Lift"))
	require.Len(t, unplaced, 1)
	assert.Equal(t, "Lift", unplaced[0].Title)
	assert.Equal(t, domain.ReasonConflictsOnly, unplaced[0].Reason)
	assert.Contains(t, unplaced[0].Detail, "Dinner")
}

func TestPlaceRecurring_PastBedDropped(t *testing.T) {
	earlyBed := func(day time.Time) DayWindow {
		return DayWindow{
			Wake: time.Date(day.Year(), day.Month(), day.Day(), 8, 0, 0, 0, day.Location()),
			Bed:  time.Date(day.Year(), day.Month(), day.Day(), 18, 30, 0, 0, day.Location()),
		}
	}
	c := domain.UserConstraints{
		WorkoutDays:          []string{"Monday"},
		WorkoutPreferredTime: "Evening",
	}
	plans := []domain.WorkoutPlan{{ID: "w1", Title: "Lift"}}

	placed, unplaced, _ := PlaceRecurring(c, monday, earlyBed, nil, plans)

	assert.Empty(t, byTitle(placed, "Lift"))
	require.Len(t, unplaced, 1)
	assert.Equal(t, "Lift", unplaced[0].Title)
	assert.Equal(t, domain.ReasonOutsideWindow, unplaced[0].Reason)
}

func TestPlaceRecurring_PlacementsNeverOverlap(t *testing.T) {
	c := domain.UserConstraints{
		WorkoutDays:          []string{"Monday", "Wednesday", "Friday"},
		WorkoutPreferredTime: "Morning",
		CommuteStart:         "8:30",
		CommuteEnd:           "9:00",
		ChoreTime:            "weekday mornings",
		ChoreDistribution:    "distributed",
	}
	plans := []domain.WorkoutPlan{{ID: "w1", Title: "Lift", DurationMin: 45}}

	placed, _, _ := PlaceRecurring(c, monday, stdWindow, nil, plans)

	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			assert.False(t, placed[i].Interval().Overlaps(placed[j].Interval()),
				"%s overlaps %s", placed[i].Title, placed[j].Title)
		}
	}
}
