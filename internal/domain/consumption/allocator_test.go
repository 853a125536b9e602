package consumption_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/domain/consumption"
	"github.com/andrescamacho/outpost-go/internal/domain/inventory"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

func values(m map[string]float64) func(string) (float64, bool) {
	return func(name string) (float64, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestAllocate_BasicCase(t *testing.T) {
	// Arrange
	stacks := []inventory.Stack{{Name: "Wood", Count: 5}}

	// Act
	allocation, ok := consumption.Allocate(10, stacks, values(map[string]float64{"Wood": 3}), consumption.Strict)

	// Assert
	require.True(t, ok)
	assert.Equal(t, "Wood", allocation.Item)
	assert.Equal(t, uint(3), allocation.Units)
	assert.Equal(t, 9.0, allocation.Total())
}

func TestAllocate_FirstQualifyingItemWins(t *testing.T) {
	stacks := []inventory.Stack{
		{Name: "Iron", Count: 4},
		{Name: "Coal", Count: 2},
		{Name: "Wood", Count: 9},
	}
	value := values(map[string]float64{"Coal": 20, "Wood": 2})

	allocation, ok := consumption.Allocate(10, stacks, value, consumption.Strict)

	require.True(t, ok)
	assert.Equal(t, "Wood", allocation.Item)
	assert.Equal(t, uint(5), allocation.Units)
}

func TestAllocate_StrictVersusInclusive(t *testing.T) {
	stacks := []inventory.Stack{{Name: "Gaz", Count: 3}}
	value := values(map[string]float64{"Gaz": 5})

	_, ok := consumption.Allocate(5, stacks, value, consumption.Strict)
	assert.False(t, ok)

	allocation, ok := consumption.Allocate(5, stacks, value, consumption.Inclusive)
	require.True(t, ok)
	assert.Equal(t, uint(1), allocation.Units)
}

func TestAllocate_NothingConsumable(t *testing.T) {
	stacks := []inventory.Stack{{Name: "Coal", Count: 2}, {Name: "Dust", Count: 1}}
	value := values(map[string]float64{"Coal": 50, "Dust": 0})

	_, ok := consumption.Allocate(10, stacks, value, consumption.Strict)
	assert.False(t, ok)

	_, ok = consumption.Allocate(0, stacks, value, consumption.Inclusive)
	assert.False(t, ok)
}

func TestConsume_RefillsCapacityAndRemovesUnits(t *testing.T) {
	// Arrange
	capacity, err := shared.NewCapacity(20, true)
	require.NoError(t, err)
	capacity.Drain(10)

	inv := inventory.NewInventory(inventory.DefaultMaxItemCount)
	inv.Add("Wood", 5)

	// Act
	allocation, ok := consumption.Consume(inv, capacity, values(map[string]float64{"Wood": 3}), consumption.Strict)

	// Assert
	require.True(t, ok)
	assert.Equal(t, uint(3), allocation.Units)
	assert.Equal(t, uint(2), inv.Count("Wood"))
	assert.InDelta(t, 1.0, capacity.Missing(), 1e-9)
}

func TestConsume_EmptyResultLeavesStateUntouched(t *testing.T) {
	capacity, err := shared.NewCapacity(20, true)
	require.NoError(t, err)
	capacity.Drain(2)

	inv := inventory.NewInventory(inventory.DefaultMaxItemCount)
	inv.Add("Wood", 5)

	_, ok := consumption.Consume(inv, capacity, values(map[string]float64{"Wood": 3}), consumption.Strict)

	assert.False(t, ok)
	assert.Equal(t, uint(5), inv.Count("Wood"))
	assert.InDelta(t, 18.0, capacity.Current(), 1e-9)
}
