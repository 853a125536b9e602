package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/adapters/persistence"
	"github.com/andrescamacho/outpost-go/internal/domain/progress"
	"github.com/andrescamacho/outpost-go/test/helpers"
)

func TestSessionRepository_StartFinishList(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSessionRepository(db)
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Start(ctx, progress.Session{ID: "old", WorldFile: "a.yaml", StartedAt: start}))
	require.NoError(t, repo.Start(ctx, progress.Session{ID: "new", WorldFile: "b.yaml", StartedAt: start.Add(time.Minute)}))

	// Act
	err := repo.Finish(ctx, "old", "LAUNCHED", 42.5, start.Add(time.Hour))
	require.NoError(t, err)
	sessions, err := repo.ListRecent(ctx, 10)

	// Assert
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "new", sessions[0].ID)
	assert.Equal(t, "RUNNING", sessions[0].Status)
	assert.Nil(t, sessions[0].EndedAt)
	assert.Equal(t, "LAUNCHED", sessions[1].Status)
	assert.InDelta(t, 42.5, sessions[1].Elapsed, 1e-9)
	assert.NotNil(t, sessions[1].EndedAt)
}

func TestSessionRepository_FinishUnknownSession(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormSessionRepository(db)

	err := repo.Finish(context.Background(), "missing", "LOST", 1, time.Now())

	assert.Error(t, err)
}

func TestCraftLogRepository_RecordListAndCount(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	sessions := persistence.NewGormSessionRepository(db)
	repo := persistence.NewGormCraftLogRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, sessions.Start(ctx, progress.Session{ID: "s1", StartedAt: now}))
	require.NoError(t, sessions.Start(ctx, progress.Session{ID: "s2", StartedAt: now}))

	records := []progress.CraftRecord{
		{SessionID: "s1", Factory: "sawmill", Recipe: "Plank", SimTime: 9, CraftedAt: now},
		{SessionID: "s1", Factory: "sawmill", Recipe: "Plank", SimTime: 3, CraftedAt: now},
		{SessionID: "s1", Factory: "forge", Recipe: "Plate", SimTime: 5, CraftedAt: now},
		{SessionID: "s2", Factory: "sawmill", Recipe: "Plank", SimTime: 1, CraftedAt: now},
	}

	// Act
	for _, record := range records {
		require.NoError(t, repo.Record(ctx, record))
	}
	listed, err := repo.ListBySession(ctx, "s1")
	require.NoError(t, err)
	counts, err := repo.CountByRecipe(ctx)
	require.NoError(t, err)

	// Assert
	require.Len(t, listed, 3)
	assert.InDelta(t, 3.0, listed[0].SimTime, 1e-9)
	assert.Equal(t, "Plate", listed[1].Recipe)
	assert.InDelta(t, 9.0, listed[2].SimTime, 1e-9)
	assert.Equal(t, map[string]int64{"Plank": 3, "Plate": 1}, counts)
}
