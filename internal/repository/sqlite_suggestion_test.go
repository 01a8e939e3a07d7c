package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/averyhall/tempo/internal/domain"
	"github.com/averyhall/tempo/internal/repository"
	"github.com/averyhall/tempo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestSuggestionRepo_SaveAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSuggestionRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSuggestion("u1", weekStart,
		testutil.WithPlacements(testutil.NewTestPlacement(weekStart, 0, 9, "Write essay")),
		testutil.WithAlgorithm("anthropic:claude-sonnet-4-20250514"),
	)
	s.Unplaced = []domain.UnplacedItem{{ItemID: "g2", Title: "Big task", Priority: 2, Reason: domain.ReasonNoCapacity}}
	s.Warnings = []domain.Warning{{Message: "tight week", Severity: domain.SeverityInfo}}

	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.UserID, got.UserID)
	assert.True(t, got.WeekStart.Equal(weekStart))
	assert.Equal(t, domain.SuggestionPending, got.Status)
	assert.Equal(t, "anthropic:claude-sonnet-4-20250514", got.Algorithm)
	require.Len(t, got.Placements, 1)
	assert.Equal(t, "Write essay", got.Placements[0].Title)
	require.Len(t, got.Unplaced, 1)
	assert.Equal(t, domain.ReasonNoCapacity, got.Unplaced[0].Reason)
	require.Len(t, got.Warnings, 1)
	assert.Nil(t, got.AppliedAt)
}

func TestSuggestionRepo_GetByIDNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSuggestionRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSuggestionRepo_GetActiveSkipsRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSuggestionRepo(database)
	ctx := context.Background()

	rejected := testutil.NewTestSuggestion("u1", weekStart, testutil.WithStatus(domain.SuggestionRejected))
	require.NoError(t, repo.Save(ctx, rejected))

	_, err := repo.GetActive(ctx, "u1", weekStart)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	pending := testutil.NewTestSuggestion("u1", weekStart)
	require.NoError(t, repo.Save(ctx, pending))

	got, err := repo.GetActive(ctx, "u1", weekStart)
	require.NoError(t, err)
	assert.Equal(t, pending.ID, got.ID)
}

func TestSuggestionRepo_GetActiveScopedToUserAndWeek(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSuggestionRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestSuggestion("u1", weekStart)))

	_, err := repo.GetActive(ctx, "u2", weekStart)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetActive(ctx, "u1", weekStart.AddDate(0, 0, 7))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSuggestionRepo_UpdateStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSuggestionRepo(database)
	ctx := context.Background()

	s := testutil.NewTestSuggestion("u1", weekStart)
	require.NoError(t, repo.Save(ctx, s))

	applied := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateStatus(ctx, s.ID, domain.SuggestionAccepted, &applied))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SuggestionAccepted, got.Status)
	require.NotNil(t, got.AppliedAt)
	assert.True(t, got.AppliedAt.Equal(applied))
}

func TestSuggestionRepo_UpdateStatusNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSuggestionRepo(database)

	err := repo.UpdateStatus(context.Background(), "missing", domain.SuggestionAccepted, nil)

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSuggestionRepo_ListByUser(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSuggestionRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, testutil.NewTestSuggestion("u1", weekStart)))
	require.NoError(t, repo.Save(ctx, testutil.NewTestSuggestion("u1", weekStart.AddDate(0, 0, 7))))
	require.NoError(t, repo.Save(ctx, testutil.NewTestSuggestion("u2", weekStart)))

	got, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
