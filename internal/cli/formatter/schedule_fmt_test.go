package formatter

import (
	"testing"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderSchedule(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s := &domain.ScheduleSuggestion{
		WeekStart: monday,
		Status:    domain.SuggestionPending,
		Algorithm: "anthropic:claude",
		Placements: []domain.ScheduledPlacement{
			{
				Title:            "Morning workout",
				Activity:         domain.ActivityWorkout,
				Start:            monday.Add(7 * time.Hour),
				End:              monday.Add(7*time.Hour + 45*time.Minute),
				SuggestedPodcast: "Hard Fork",
				IsFlexible:       true,
			},
			{
				Title:      "Write essay",
				Activity:   domain.ActivityTask,
				Start:      monday.AddDate(0, 0, 1).Add(19 * time.Hour),
				End:        monday.AddDate(0, 0, 1).Add(20 * time.Hour),
				IsFlexible: true,
			},
		},
		Unplaced: []domain.UnplacedItem{
			{Title: "Deep clean", Priority: 4, Reason: domain.ReasonNoCapacity},
		},
		Warnings:   []domain.Warning{{Message: "week is nearly full", Severity: domain.SeverityWarning}},
		Reasoning:  "Front-loaded the focus work.",
		Confidence: 0.9,
	}

	out := RenderSchedule(s)

	assert.Contains(t, out, "Week of Mar 2, 2026")
	assert.Contains(t, out, "Monday Mar 2")
	assert.Contains(t, out, "Tuesday Mar 3")
	assert.Contains(t, out, "07:00–07:45")
	assert.Contains(t, out, "Morning workout")
	assert.Contains(t, out, "Hard Fork")
	assert.Contains(t, out, "Deep clean")
	assert.Contains(t, out, "week is nearly full")
	assert.Contains(t, out, "confidence 90%")
}

func TestRenderSchedule_Empty(t *testing.T) {
	s := &domain.ScheduleSuggestion{
		WeekStart: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Status:    domain.SuggestionPending,
		Algorithm: domain.AlgorithmFallback,
	}
	assert.Contains(t, RenderSchedule(s), "Nothing scheduled this week.")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"Item", "Reason"}, [][]string{
		{"Deep clean", "no_capacity"},
		{"Laundry", "conflicts_only"},
	})
	assert.Contains(t, out, "Item")
	assert.Contains(t, out, "Deep clean")
	assert.Contains(t, out, "conflicts_only")
}
