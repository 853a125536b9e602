package progress_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/application/logging"
	"github.com/andrescamacho/outpost-go/internal/application/progress"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	"github.com/andrescamacho/outpost-go/internal/domain/rocket"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
	"github.com/andrescamacho/outpost-go/test/helpers"
)

var fixedNow = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func TestRecorder_StoresCraftsAndRocketProgress(t *testing.T) {
	// Arrange
	progressRepo := helpers.NewMockProgressRepository()
	craftLog := helpers.NewMockCraftLogRepository()
	recorder := progress.NewRecorder("session-1", progressRepo, craftLog, shared.NewMockClock(fixedNow))
	ctx := context.Background()

	// Act
	recorder.Handle(ctx, simulation.Event{Kind: simulation.EventRecipeCrafted, Source: "sawmill", Item: "Plank", Time: 4.5})
	recorder.Handle(ctx, simulation.Event{Kind: simulation.EventRocketBuilt, Source: simulation.TargetPad})
	recorder.Handle(ctx, simulation.Event{Kind: simulation.EventMonsterFed, Source: simulation.TargetMonster})

	// Assert
	records, err := craftLog.ListBySession(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "sawmill", records[0].Factory)
	assert.Equal(t, "Plank", records[0].Recipe)
	assert.InDelta(t, 4.5, records[0].SimTime, 1e-9)
	assert.Equal(t, fixedNow, records[0].CraftedAt)

	built, err := progressRepo.RocketBuilt(ctx)
	require.NoError(t, err)
	assert.True(t, built)
	assert.Equal(t, fixedNow, progressRepo.BuiltAt())
}

func TestRecorder_RepositoryFailuresAreLogged(t *testing.T) {
	// Arrange
	progressRepo := helpers.NewMockProgressRepository()
	progressRepo.Err = errors.New("disk full")
	craftLog := helpers.NewMockCraftLogRepository()
	craftLog.Err = errors.New("disk full")
	logger := &helpers.RecordingLogger{}
	ctx := logging.WithLogger(context.Background(), logger)
	recorder := progress.NewRecorder("s", progressRepo, craftLog, shared.NewMockClock(fixedNow))

	// Act
	recorder.Handle(ctx, simulation.Event{Kind: simulation.EventRecipeCrafted, Source: "sawmill", Item: "Plank"})
	recorder.Handle(ctx, simulation.Event{Kind: simulation.EventRocketBuilt})

	// Assert
	assert.Equal(t, []string{"Failed to record craft", "Failed to store rocket progress"}, logger.Messages("ERROR"))
}

func TestRecorder_AttachFollowsWorldEvents(t *testing.T) {
	// Arrange
	items := helpers.TestCatalog()
	spawner := helpers.NewMockSpawner(items)
	world, err := simulation.NewWorld(items, spawner)
	require.NoError(t, err)
	pad, err := rocket.NewRocketPad(rocket.RocketConfig{FuelCapacity: 1}, items, spawner)
	require.NoError(t, err)
	world.SetRocketPad(pad)

	progressRepo := helpers.NewMockProgressRepository()
	recorder := progress.NewRecorder("s", progressRepo, nil, shared.NewMockClock(fixedNow))
	recorder.Attach(context.Background(), world)

	// Act
	_, err = pad.Bootstrap()
	require.NoError(t, err)

	// Assert
	built, err := progressRepo.RocketBuilt(context.Background())
	require.NoError(t, err)
	assert.True(t, built)
}
