package service

import (
	"context"
	"testing"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/generator"
	"github.com/averyhall/tempo/internal/repository"
	"github.com/averyhall/tempo/internal/testutil"
)

var testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

type fakeCalendar struct {
	connected bool
	loc       *time.Location
	busy      []domain.BusyEvent
}

func (c *fakeCalendar) BusyEvents(_ context.Context, _ string, _, _ time.Time) ([]domain.BusyEvent, error) {
	if !c.connected {
		return nil, ErrCalendarNotConnected
	}
	return c.busy, nil
}

func (c *fakeCalendar) Timezone(_ context.Context, _ string) (*time.Location, error) {
	if !c.connected {
		return nil, ErrCalendarNotConnected
	}
	return c.loc, nil
}

type fakeProvider struct {
	name  string
	draft *generator.Draft
	err   error
	calls int
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) AttemptGenerate(_ context.Context, _ generator.Context) (*generator.Draft, error) {
	p.calls++
	return p.draft, p.err
}

type testStack struct {
	suggestions *repository.SQLiteSuggestionRepo
	history     *repository.SQLiteHistoryRepo
	feedback    *repository.SQLiteFeedbackRepo
	prefs       *repository.SQLitePreferenceRepo
	goals       *repository.SQLiteGoalRepo
	workouts    *repository.SQLiteWorkoutRepo
	episodes    *repository.SQLiteEpisodeRepo
	calendar    *fakeCalendar
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testStack{
		suggestions: repository.NewSQLiteSuggestionRepo(database),
		history:     repository.NewSQLiteHistoryRepo(database),
		feedback:    repository.NewSQLiteFeedbackRepo(database),
		prefs:       repository.NewSQLitePreferenceRepo(database),
		goals:       repository.NewSQLiteGoalRepo(database),
		workouts:    repository.NewSQLiteWorkoutRepo(database),
		episodes:    repository.NewSQLiteEpisodeRepo(database),
		calendar:    &fakeCalendar{connected: true, loc: time.UTC},
	}
}

func (ts *testStack) scheduleService(providers ...generator.Provider) *scheduleService {
	svc := NewScheduleService(
		ts.suggestions,
		ts.feedback,
		ts.prefs,
		ts.goals,
		ts.workouts,
		ts.episodes,
		ts.calendar,
		providers,
	).(*scheduleService)
	svc.now = func() time.Time { return testMonday.Add(8 * time.Hour) }
	return svc
}

// validDraft produces one Tuesday-evening placement clear of commitments.
func validDraft(algorithm string) *generator.Draft {
	day := testMonday.AddDate(0, 0, 1)
	return &generator.Draft{
		Placements: []domain.ScheduledPlacement{{
			ItemID:     "g1",
			Title:      "Write essay",
			Activity:   domain.ActivityTask,
			Day:        day.Weekday().String(),
			Start:      time.Date(day.Year(), day.Month(), day.Day(), 19, 0, 0, 0, time.UTC),
			End:        time.Date(day.Year(), day.Month(), day.Day(), 20, 0, 0, 0, time.UTC),
			IsFlexible: true,
			Priority:   1,
		}},
		Reasoning:  "Evening focus block.",
		Confidence: 0.9,
		Algorithm:  algorithm,
	}
}
