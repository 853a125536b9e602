package setup_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/application/setup"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
	"github.com/andrescamacho/outpost-go/internal/infrastructure/config"
	"github.com/andrescamacho/outpost-go/test/helpers"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

const outpostWorld = `
items:
  - {name: Wood, category: FUEL, fuel_power: 3}
  - {name: Uranium, category: FUEL, fuel_power: 1000}
  - {name: Plank}
  - {name: Berry, category: FOOD, food_hunger: 4}
  - {name: Hull, category: ROCKET_PART, build_index: 1}
  - {name: Engine, category: ROCKET_PART, build_index: 0}
factories:
  - name: sawmill
    output_delay: 0.5
    output_cooldown: 0.2
    power_capacity: 60
    high_value_fuel: Uranium
    consume_recipes: true
    recipes:
      - name: Plank
        duration: 2
        input: [{item: Wood, count: 2}]
        output: [{item: Plank, count: 1}]
rocket_pad:
  fuel_capacity: 3
  payload: [Berry]
monster:
  hunger_capacity: 30
  eat_delay: 1
  eat_cooldown: 2
deposits:
  - name: tree
    hit_points: 2
    loot_min: 1
    loot_max: 1
    loots: [{item: Wood, weight: 1}]
script:
  - {at: 2, action: hit, target: tree}
  - {at: 1, action: deposit, target: sawmill, intake: craft, item: Wood, count: 2}
  - {at: 3, action: land}
`

func buildOutpost(t *testing.T) (*simulation.World, []simulation.ScriptEvent, *helpers.MockSpawner) {
	t.Helper()
	def, err := config.ParseWorldDefinition([]byte(outpostWorld))
	require.NoError(t, err)

	items, err := setup.BuildCatalog(def)
	require.NoError(t, err)
	spawner := helpers.NewMockSpawner(items)

	world, script, err := setup.BuildWorld(def, items, spawner, fixedRandom(0.5))
	require.NoError(t, err)
	return world, script, spawner
}

func TestBuildWorld_CreatesEveryComponent(t *testing.T) {
	// Act
	world, script, _ := buildOutpost(t)

	// Assert
	require.Len(t, world.Factories(), 1)
	sawmill := world.Factories()[0]
	assert.Equal(t, "sawmill", sawmill.Name())
	assert.Equal(t, "Uranium", sawmill.Config().HighValueFuel)

	require.NotNil(t, world.RocketPad())
	assert.Equal(t, 2, world.RocketPad().PartCount())
	next, ok := world.RocketPad().NextPart()
	require.True(t, ok)
	assert.Equal(t, "Engine", next.Name)

	require.NotNil(t, world.Monster())
	assert.InDelta(t, 1.0, world.Monster().Hunger(), 1e-9)

	require.Len(t, world.Deposits(), 1)
	assert.Equal(t, uint(2), world.Deposits()[0].HitPoints())

	require.Len(t, script, 3)
	assert.Equal(t, simulation.ActionDeposit, script[0].Action)
	assert.Equal(t, simulation.ActionHit, script[1].Action)
	assert.Equal(t, simulation.ActionLand, script[2].Action)
}

func TestBuildWorld_ConsumedRecipeIsRemovedAfterCraft(t *testing.T) {
	// Arrange
	world, _, _ := buildOutpost(t)
	sawmill, ok := world.Factory("sawmill")
	require.True(t, ok)

	// Act
	_, err := world.Deposit("sawmill", simulation.IntakeCraft, "Wood", 2)
	require.NoError(t, err)
	crafted, err := world.Craft("sawmill")
	require.NoError(t, err)
	require.True(t, crafted)
	require.NoError(t, world.Tick(2))

	// Assert
	assert.Empty(t, sawmill.Recipes())
}

func TestBuildCatalog_DuplicateItemIsFatal(t *testing.T) {
	def, err := config.ParseWorldDefinition([]byte(`
items:
  - {name: Wood}
  - {name: Wood}
`))
	require.NoError(t, err)

	_, err = setup.BuildCatalog(def)

	var duplicate *shared.DuplicateItemError
	assert.True(t, errors.As(err, &duplicate))
}

func TestBuildWorld_UnknownRecipeItemIsFatal(t *testing.T) {
	// Arrange
	def, err := config.ParseWorldDefinition([]byte(`
items: [{name: Wood}]
factories:
  - name: sawmill
    power_capacity: 10
    recipes: [{name: Plank, input: [{item: Wood, count: 1}], output: [{item: Plank, count: 1}]}]
`))
	require.NoError(t, err)
	items, err := setup.BuildCatalog(def)
	require.NoError(t, err)

	// Act
	_, _, err = setup.BuildWorld(def, items, helpers.NewMockSpawner(items), fixedRandom(0))

	// Assert
	var unknown *shared.UnknownItemError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Plank", unknown.Name)
}

func TestBuildScript_TargetRequiredForTargetedActions(t *testing.T) {
	_, err := setup.BuildScript([]config.ScriptEventDefinition{{At: 0, Action: "interact"}})

	var configErr *shared.ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}
