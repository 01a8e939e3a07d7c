package testutil

import (
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/google/uuid"
)

// Goal options
type GoalOption func(*domain.SchedulableItem)

func WithPriority(p int) GoalOption {
	return func(it *domain.SchedulableItem) {
		it.Priority = p
	}
}

func WithDuration(minutes int) GoalOption {
	return func(it *domain.SchedulableItem) {
		it.DurationMin = minutes
	}
}

func WithActivity(a domain.ActivityType) GoalOption {
	return func(it *domain.SchedulableItem) {
		it.Activity = a
	}
}

func NewTestGoal(text string, opts ...GoalOption) *domain.SchedulableItem {
	it := &domain.SchedulableItem{
		ID:          uuid.New().String(),
		Text:        text,
		DurationMin: 60,
		Priority:    1,
		Activity:    domain.ActivityTask,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Workout options
type WorkoutOption func(*domain.WorkoutPlan)

func WithCompleted() WorkoutOption {
	return func(w *domain.WorkoutPlan) {
		w.Completed = true
	}
}

func WithSection(title string, exercises ...domain.Exercise) WorkoutOption {
	return func(w *domain.WorkoutPlan) {
		w.Sections = append(w.Sections, domain.WorkoutSection{Title: title, Exercises: exercises})
	}
}

func NewTestWorkout(title string, opts ...WorkoutOption) *domain.WorkoutPlan {
	w := &domain.WorkoutPlan{
		ID:          uuid.New().String(),
		Title:       title,
		DurationMin: 45,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Suggestion options
type SuggestionOption func(*domain.ScheduleSuggestion)

func WithStatus(s domain.SuggestionStatus) SuggestionOption {
	return func(sg *domain.ScheduleSuggestion) {
		sg.Status = s
	}
}

func WithPlacements(pls ...domain.ScheduledPlacement) SuggestionOption {
	return func(sg *domain.ScheduleSuggestion) {
		sg.Placements = pls
	}
}

func WithAlgorithm(a string) SuggestionOption {
	return func(sg *domain.ScheduleSuggestion) {
		sg.Algorithm = a
	}
}

func NewTestSuggestion(userID string, weekStart time.Time, opts ...SuggestionOption) *domain.ScheduleSuggestion {
	s := &domain.ScheduleSuggestion{
		ID:          uuid.New().String(),
		UserID:      userID,
		WeekStart:   weekStart,
		Reasoning:   "test schedule",
		Confidence:  0.5,
		Algorithm:   domain.AlgorithmFallback,
		Status:      domain.SuggestionPending,
		GeneratedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTestPlacement builds a placement covering [startHour, startHour+1) on
// the given day offset from weekStart.
func NewTestPlacement(weekStart time.Time, dayOffset, startHour int, title string) domain.ScheduledPlacement {
	day := weekStart.AddDate(0, 0, dayOffset)
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, day.Location())
	return domain.ScheduledPlacement{
		Title:      title,
		Activity:   domain.ActivityTask,
		Day:        day.Weekday().String(),
		Start:      start,
		End:        start.Add(time.Hour),
		IsFlexible: true,
		Priority:   1,
	}
}
