package repository_test

import (
	"context"
	"testing"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/repository"
	"github.com/averyhall/tempo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalRepo_ListOpenOrdersByPriority(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteGoalRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, "u1", testutil.NewTestGoal("Read paper", testutil.WithPriority(3))))
	require.NoError(t, repo.Create(ctx, "u1", testutil.NewTestGoal("Write essay", testutil.WithPriority(1))))
	require.NoError(t, repo.Create(ctx, "u2", testutil.NewTestGoal("Someone else")))

	got, err := repo.ListOpen(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Write essay", got[0].Text)
	assert.Equal(t, "Read paper", got[1].Text)
}

func TestGoalRepo_MarkCompletedExcludesFromList(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteGoalRepo(database)
	ctx := context.Background()

	g := testutil.NewTestGoal("Write essay")
	require.NoError(t, repo.Create(ctx, "u1", g))
	require.NoError(t, repo.MarkCompleted(ctx, g.ID))

	got, err := repo.ListOpen(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, repo.MarkCompleted(ctx, "missing"), repository.ErrNotFound)
}

func TestWorkoutRepo_RoundTripsSections(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkoutRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorkout("Push Day",
		testutil.WithSection("Warmup", domain.Exercise{Name: "Jumping jacks", Duration: "2m"}),
		testutil.WithSection("Main",
			domain.Exercise{Name: "Bench", Sets: 3, Reps: 10},
			domain.Exercise{Name: "Dips", Sets: 3, Reps: 12},
		),
	)
	require.NoError(t, repo.SavePlan(ctx, "u1", w))

	plans, err := repo.ListPlans(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Len(t, plans[0].Sections, 2)
	assert.Equal(t, "Warmup", plans[0].Sections[0].Title)
	require.Len(t, plans[0].Sections[1].Exercises, 2)
	assert.Equal(t, "Bench", plans[0].Sections[1].Exercises[0].Name)
	assert.Contains(t, plans[0].ExerciseSummary(), "Bench: 3 sets × 10 reps")
}

func TestWorkoutRepo_SavePlanReplacesExercises(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteWorkoutRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorkout("Push Day",
		testutil.WithSection("Main", domain.Exercise{Name: "Bench", Sets: 3, Reps: 10}))
	require.NoError(t, repo.SavePlan(ctx, "u1", w))

	w.Sections = []domain.WorkoutSection{
		{Title: "Main", Exercises: []domain.Exercise{{Name: "Incline bench", Sets: 4, Reps: 8}}},
	}
	require.NoError(t, repo.SavePlan(ctx, "u1", w))

	plans, err := repo.ListPlans(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	require.Len(t, plans[0].Sections, 1)
	require.Len(t, plans[0].Sections[0].Exercises, 1)
	assert.Equal(t, "Incline bench", plans[0].Sections[0].Exercises[0].Name)
}

func TestEpisodeRepo_ListUnplayedAsItems(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteEpisodeRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "u1", &domain.Episode{
		ID: "e1", Title: "The fall of Rome", Show: "The Rest Is History", DurationMin: 55,
	}))
	require.NoError(t, repo.Save(ctx, "u1", &domain.Episode{
		ID: "e2", Title: "Old one", DurationMin: 40, Played: true,
	}))

	items, err := repo.ListUnplayed(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "e1", items[0].ID)
	assert.Equal(t, "The fall of Rome (The Rest Is History)", items[0].Text)
	assert.Equal(t, domain.ActivityPodcast, items[0].Activity)
	assert.Equal(t, 55, items[0].DurationMin)
}
