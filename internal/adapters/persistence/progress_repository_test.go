package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/adapters/persistence"
	"github.com/andrescamacho/outpost-go/test/helpers"
)

func TestProgressRepository_DefaultsToNotBuilt(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProgressRepository(db)

	built, err := repo.RocketBuilt(context.Background())

	require.NoError(t, err)
	assert.False(t, built)
}

func TestProgressRepository_MarkKeepsFirstBuildTime(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProgressRepository(db)
	ctx := context.Background()
	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Act
	require.NoError(t, repo.MarkRocketBuilt(ctx, first))
	require.NoError(t, repo.MarkRocketBuilt(ctx, first.Add(time.Hour)))

	// Assert
	built, err := repo.RocketBuilt(ctx)
	require.NoError(t, err)
	assert.True(t, built)

	builtAt, err := repo.BuiltAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, builtAt)
	assert.True(t, first.Equal(*builtAt))
}

func TestProgressRepository_Reset(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormProgressRepository(db)
	ctx := context.Background()
	require.NoError(t, repo.MarkRocketBuilt(ctx, time.Now()))

	require.NoError(t, repo.Reset(ctx))

	built, err := repo.RocketBuilt(ctx)
	require.NoError(t, err)
	assert.False(t, built)
}
