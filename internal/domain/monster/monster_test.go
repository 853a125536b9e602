package monster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/monster"
	"github.com/andrescamacho/outpost-go/test/helpers"
)

func newTestMonster(t *testing.T, config monster.Config) *monster.Monster {
	t.Helper()
	m, err := monster.NewMonster(config, helpers.TestCatalog())
	require.NoError(t, err)
	return m
}

func TestMonster_StarvesToDeath(t *testing.T) {
	m := newTestMonster(t, monster.Config{HungerCapacity: 10, EatDelay: 1, EatCooldown: 2})
	deaths := 0
	m.OnDie.Add(func(struct{}) { deaths++ })

	m.Tick(6)
	assert.InDelta(t, 0.4, m.Hunger(), 1e-9)
	assert.False(t, m.Dead())

	m.Tick(5)
	assert.True(t, m.Dead())
	m.Tick(1)
	assert.Equal(t, 1, deaths)
}

func TestMonster_MinHungerStopsDrain(t *testing.T) {
	m := newTestMonster(t, monster.Config{HungerCapacity: 10, MinHunger: 4})

	m.Tick(6)
	m.Tick(6)

	assert.False(t, m.Dead())
	assert.InDelta(t, 4.0, m.HungerCapacity().Current(), 1e-9)
}

func TestMonster_EatsAfterDelayThenCoolsDown(t *testing.T) {
	// Arrange
	m := newTestMonster(t, monster.Config{HungerCapacity: 20, EatDelay: 1, EatCooldown: 2})
	var meals []monster.Fed
	m.OnFed.Add(func(f monster.Fed) { meals = append(meals, f) })
	m.Tick(10)
	require.True(t, m.Mouth().Offer(catalog.ItemData{Name: "Berry", Category: catalog.CategoryFood}))
	require.True(t, m.Mouth().Offer(catalog.ItemData{Name: "Berry", Category: catalog.CategoryFood}))
	require.True(t, m.Mouth().Offer(catalog.ItemData{Name: "Berry", Category: catalog.CategoryFood}))

	// Act: first tick arms the eat delay, the second completes it
	m.Tick(0)
	assert.Empty(t, meals)
	m.Tick(1)

	// Assert: missing 11 allows floor(11/4)=2 berries
	require.Len(t, meals, 1)
	assert.Equal(t, monster.Fed{Item: "Berry", Units: 2}, meals[0])
	assert.Equal(t, uint(1), m.Mouth().Inventory.Count("Berry"))
	assert.InDelta(t, 17.0, m.HungerCapacity().Current(), 1e-9)
	assert.True(t, m.Eating())
	assert.Equal(t, 1.0, m.EatCooldown())
}

func TestMonster_RejectsNonFood(t *testing.T) {
	m := newTestMonster(t, monster.Config{HungerCapacity: 10})

	assert.False(t, m.Mouth().Offer(catalog.ItemData{Name: "Wood", Category: catalog.CategoryFuel}))
}

func TestNewMonster_InvalidMinHunger(t *testing.T) {
	_, err := monster.NewMonster(monster.Config{HungerCapacity: 5, MinHunger: 6}, helpers.TestCatalog())

	assert.Error(t, err)
}
