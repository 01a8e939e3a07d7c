package service

import (
	"context"
	"testing"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRebalanceService(ts *testStack, schedules ScheduleService) *rebalanceService {
	svc := NewRebalanceService(ts.suggestions, ts.history, ts.feedback, ts.prefs, ts.calendar, schedules).(*rebalanceService)
	// Mid-week Wednesday; the current week is still the one starting testMonday.
	svc.now = func() time.Time { return testMonday.AddDate(0, 0, 2).Add(14 * time.Hour) }
	return svc
}

func TestRebalance_ArchivesAndRegenerates(t *testing.T) {
	ts := newTestStack(t)
	ctx := context.Background()
	require.NoError(t, ts.goals.Create(ctx, "u1", testutil.NewTestGoal("Write essay")))

	schedules := ts.scheduleService()
	prior, err := schedules.Generate(ctx, GenerateRequest{UserID: "u1", WeekStart: testMonday})
	require.NoError(t, err)

	svc := newRebalanceService(ts, schedules)
	feedback := []domain.TaskFeedback{{TaskID: "g1", EstimatedMinutes: 60, ActualMinutes: 90, Completed: false}}

	next, err := svc.Rebalance(ctx, "u1", feedback, nil)
	require.NoError(t, err)
	assert.NotEqual(t, prior.ID, next.ID)

	// The old suggestion is retired; the new one is now the active one.
	retired, err := ts.suggestions.GetByID(ctx, prior.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionRejected, retired.Status)

	active, err := ts.suggestions.GetActive(ctx, "u1", testMonday)
	require.NoError(t, err)
	assert.Equal(t, next.ID, active.ID)

	entries, err := ts.history.ListByWeek(ctx, "u1", testMonday)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ChangeRebalance, entries[0].ChangeType)
	assert.Equal(t, domain.TriggerUserFeedback, entries[0].Trigger)
	assert.Equal(t, 1, entries[0].Summary.FeedbackItems)
	assert.Equal(t, len(prior.Placements), len(entries[0].Previous))
	assert.Equal(t, len(next.Placements), len(entries[0].New))

	// The feedback itself is recorded for later status queries.
	saved, err := ts.feedback.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}

func TestRebalance_CalendarChangeTrigger(t *testing.T) {
	ts := newTestStack(t)
	ctx := context.Background()

	schedules := ts.scheduleService()
	_, err := schedules.Generate(ctx, GenerateRequest{UserID: "u1", WeekStart: testMonday})
	require.NoError(t, err)

	svc := newRebalanceService(ts, schedules)
	changes := []domain.CalendarChange{{EventID: "ev1", Kind: "added", Description: "Dentist"}}

	_, err = svc.Rebalance(ctx, "u1", nil, changes)
	require.NoError(t, err)

	entries, err := ts.history.ListByWeek(ctx, "u1", testMonday)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.TriggerCalendarChange, entries[0].Trigger)
	assert.Equal(t, 1, entries[0].Summary.CalendarChanges)
}

func TestRebalance_NoPriorSuggestionJustGenerates(t *testing.T) {
	ts := newTestStack(t)
	ctx := context.Background()

	schedules := ts.scheduleService()
	svc := newRebalanceService(ts, schedules)

	next, err := svc.Rebalance(ctx, "u1", nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, next.ID)

	entries, err := ts.history.ListByWeek(ctx, "u1", testMonday)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing to archive on a first run")
}

func TestRebalance_WeekKeyedToCalendarTimezone(t *testing.T) {
	ts := newTestStack(t)
	ts.calendar.loc = time.FixedZone("UTC-2", -2*60*60)
	ctx := context.Background()

	// Just after midnight UTC on Monday it is still Sunday evening in the
	// calendar zone, so the current week starts on the previous Monday.
	now := testMonday.Add(30 * time.Minute)

	schedules := ts.scheduleService()
	prior, err := schedules.Generate(ctx, GenerateRequest{UserID: "u1", WeekStart: now})
	require.NoError(t, err)
	assert.Equal(t, 23, prior.WeekStart.Day(), "suggestion belongs to the week of Feb 23 in the calendar zone")

	svc := newRebalanceService(ts, schedules)
	svc.now = func() time.Time { return now }

	next, err := svc.Rebalance(ctx, "u1", nil, []domain.CalendarChange{{EventID: "ev1", Kind: "moved"}})
	require.NoError(t, err)
	assert.NotEqual(t, prior.ID, next.ID)

	retired, err := ts.suggestions.GetByID(ctx, prior.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionRejected, retired.Status, "the prior suggestion is found despite the server-zone Monday differing")

	entries, err := ts.history.ListByWeek(ctx, "u1", prior.WeekStart)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFeedbackService_Validates(t *testing.T) {
	ts := newTestStack(t)
	svc := NewFeedbackService(ts.feedback)
	ctx := context.Background()

	assert.Error(t, svc.Submit(ctx, "u1", &domain.TaskFeedback{}))
	assert.Error(t, svc.Submit(ctx, "u1", &domain.TaskFeedback{TaskID: "g1", ActualMinutes: -5}))
	assert.Error(t, svc.Submit(ctx, "u1", &domain.TaskFeedback{TaskID: "g1", DifficultyRating: 9}))

	require.NoError(t, svc.Submit(ctx, "u1", &domain.TaskFeedback{
		TaskID: "g1", EstimatedMinutes: 60, ActualMinutes: 75, Completed: true, DifficultyRating: 3,
	}))

	saved, err := ts.feedback.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, saved, 1)
}
