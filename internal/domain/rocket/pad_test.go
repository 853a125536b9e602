package rocket_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/rocket"
	"github.com/andrescamacho/outpost-go/test/helpers"
)

func newTestPad(t *testing.T, fuelCapacity uint) (*rocket.RocketPad, *helpers.MockSpawner, *catalog.Catalog) {
	t.Helper()
	items := helpers.TestCatalog()
	spawner := helpers.NewMockSpawner(items)
	pad, err := rocket.NewRocketPad(rocket.RocketConfig{FuelCapacity: fuelCapacity}, items, spawner)
	require.NoError(t, err)
	return pad, spawner, items
}

func offer(t *testing.T, items *catalog.Catalog, intake interface {
	Offer(catalog.ItemData) bool
}, name string) bool {
	t.Helper()
	data, err := items.Lookup(name)
	require.NoError(t, err)
	return intake.Offer(data)
}

func TestRocketPad_PartsInBuildOrder(t *testing.T) {
	// Arrange
	pad, spawner, items := newTestPad(t, 5)

	// Act & Assert: only the next part is accepted
	assert.False(t, offer(t, items, pad.PartIntake(), "Hull"))
	assert.True(t, offer(t, items, pad.PartIntake(), "Engine"))
	assert.False(t, offer(t, items, pad.PartIntake(), "Engine"))

	require.NoError(t, pad.Tick(0.1))
	assert.Equal(t, 1, pad.Parts())
	assert.InDelta(t, 1.0/3.0, pad.Progress(), 1e-9)

	assert.True(t, offer(t, items, pad.PartIntake(), "Hull"))
	require.NoError(t, pad.Tick(0.1))
	assert.True(t, offer(t, items, pad.PartIntake(), "Nose"))
	require.NoError(t, pad.Tick(0.1))

	assert.Equal(t, []string{"Engine", "Hull", "Nose"}, spawner.Names())
	assert.Equal(t, 1.0, pad.Progress())
	assert.False(t, offer(t, items, pad.PartIntake(), "Engine"))
	assert.True(t, pad.CanBeInteractedWith())
}

func TestRocketPad_CraftRocketRequiresAllParts(t *testing.T) {
	pad, _, _ := newTestPad(t, 5)

	_, err := pad.CraftRocket()
	assert.Error(t, err)

	ok, err := pad.Interact()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRocketPad_FuelIntakeTracksFreeSpace(t *testing.T) {
	// Arrange
	pad, spawner, items := newTestPad(t, 3)
	built := 0
	pad.OnRocketBuilt.Add(func(*rocket.Rocket) { built++ })
	for _, name := range []string{"Engine", "Hull", "Nose"} {
		require.True(t, offer(t, items, pad.PartIntake(), name))
		require.NoError(t, pad.Tick(0.1))
	}

	// Act
	ok, err := pad.Interact()

	// Assert
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, built)
	for _, handle := range spawner.Spawned {
		assert.True(t, handle.Destroyed)
	}
	assert.Equal(t, uint(3), pad.FuelIntake().Inventory.MaxItemCount())
	assert.False(t, offer(t, items, pad.FuelIntake(), "Iron"))

	require.True(t, offer(t, items, pad.FuelIntake(), "Wood"))
	require.True(t, offer(t, items, pad.FuelIntake(), "Gaz"))
	require.NoError(t, pad.Tick(0.1))
	assert.Equal(t, uint(1), pad.Rocket().FuelStored())
	assert.Equal(t, uint(2), pad.FuelIntake().Inventory.MaxItemCount())

	require.NoError(t, pad.Tick(0.1))
	require.True(t, offer(t, items, pad.FuelIntake(), "Wood"))
	require.NoError(t, pad.Tick(0.1))

	assert.True(t, pad.Rocket().IsFull())
	assert.False(t, offer(t, items, pad.FuelIntake(), "Wood"))
	assert.False(t, pad.CanBeInteractedWith())
}

func TestRocketPad_Bootstrap(t *testing.T) {
	pad, _, _ := newTestPad(t, 4)

	r, err := pad.Bootstrap()

	require.NoError(t, err)
	assert.True(t, r.IsFull())
	assert.Equal(t, 3, pad.Parts())
	assert.Equal(t, uint(0), pad.FuelIntake().Inventory.MaxItemCount())
}

func TestNewRocketPad_RejectsUnknownPayload(t *testing.T) {
	items := helpers.TestCatalog()

	_, err := rocket.NewRocketPad(rocket.RocketConfig{Payload: []string{"Gold"}}, items, helpers.NewMockSpawner(items))

	assert.Error(t, err)
}
