package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/infrastructure/config"
)

const minimalWorld = `
items:
  - {name: Wood, category: FUEL, fuel_power: 3}
  - {name: Plank}
factories:
  - name: sawmill
    power_capacity: 60
    recipes:
      - name: Plank
        duration: 2
        input: [{item: Wood, count: 2}]
        output: [{item: Plank, count: 1}]
script:
  - {at: 1, action: deposit, target: sawmill, intake: craft, item: Wood, count: 2}
`

func TestParseWorldDefinition_Minimal(t *testing.T) {
	// Act
	def, err := config.ParseWorldDefinition([]byte(minimalWorld))

	// Assert
	require.NoError(t, err)
	require.Len(t, def.Items, 2)
	assert.Equal(t, "", def.Items[1].Category)
	require.Len(t, def.Factories, 1)
	assert.Equal(t, uint(2), def.Factories[0].Recipes[0].Input[0].Count)
	assert.Nil(t, def.RocketPad)
	require.Len(t, def.Script, 1)
	assert.Equal(t, "deposit", def.Script[0].Action)
}

func TestParseWorldDefinition_RejectsUnknownKeys(t *testing.T) {
	_, err := config.ParseWorldDefinition([]byte(`
items:
  - {name: Wood, colour: brown}
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestParseWorldDefinition_RejectsUnknownCategory(t *testing.T) {
	_, err := config.ParseWorldDefinition([]byte(`
items:
  - {name: Wood, category: LUMBER}
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "item_category")
}

func TestParseWorldDefinition_ValidatesNestedFields(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{
			name:    "no items",
			yaml:    "items: []",
			message: "items",
		},
		{
			name: "zero recipe count",
			yaml: `
items: [{name: Wood}]
factories:
  - name: f
    power_capacity: 1
    recipes: [{name: r, output: [{item: Wood, count: 0}]}]
`,
			message: "factories[0].recipes[0].output[0].count",
		},
		{
			name: "min hunger above capacity",
			yaml: `
items: [{name: Berry, category: FOOD, food_hunger: 1}]
monster: {hunger_capacity: 10, min_hunger: 11}
`,
			message: "monster.min_hunger",
		},
		{
			name: "bad script action",
			yaml: `
items: [{name: Wood}]
script: [{at: 0, action: dance, target: f}]
`,
			message: "script[0].action",
		},
		{
			name: "deposit without item",
			yaml: `
items: [{name: Wood}]
script: [{at: 0, action: deposit, target: f}]
`,
			message: "script[0].item",
		},
		{
			name: "loot range inverted",
			yaml: `
items: [{name: Wood}]
deposits: [{name: tree, hit_points: 3, loot_min: 2, loot_max: 1}]
`,
			message: "deposits[0].loot_max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParseWorldDefinition([]byte(tt.yaml))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadWorldDefinition_MissingFile(t *testing.T) {
	_, err := config.LoadWorldDefinition("does-not-exist.yaml")

	assert.Error(t, err)
}
