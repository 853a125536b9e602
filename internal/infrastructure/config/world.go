package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WorldDefinition describes everything a simulation session starts with
type WorldDefinition struct {
	Items     []ItemDefinition        `yaml:"items" validate:"required,min=1,dive"`
	Factories []FactoryDefinition     `yaml:"factories" validate:"dive"`
	RocketPad *RocketPadDefinition    `yaml:"rocket_pad"`
	Monster   *MonsterDefinition      `yaml:"monster"`
	Deposits  []DepositDefinition     `yaml:"deposits" validate:"dive"`
	Script    []ScriptEventDefinition `yaml:"script" validate:"dive"`
}

// ItemDefinition is one catalog entry
type ItemDefinition struct {
	Name       string  `yaml:"name" validate:"required"`
	Category   string  `yaml:"category" validate:"item_category"`
	FuelPower  float64 `yaml:"fuel_power" validate:"min=0"`
	FoodHunger float64 `yaml:"food_hunger" validate:"min=0"`
	BuildIndex int     `yaml:"build_index" validate:"min=0"`
}

// StackDefinition is an item count inside a recipe
type StackDefinition struct {
	Item  string `yaml:"item" validate:"required"`
	Count uint   `yaml:"count" validate:"min=1"`
}

// RecipeDefinition is one factory recipe
type RecipeDefinition struct {
	Name     string            `yaml:"name" validate:"required"`
	Duration float64           `yaml:"duration" validate:"min=0"`
	Input    []StackDefinition `yaml:"input" validate:"dive"`
	Output   []StackDefinition `yaml:"output" validate:"required,min=1,dive"`
}

// FactoryDefinition configures one factory
type FactoryDefinition struct {
	Name                string             `yaml:"name" validate:"required"`
	OutputDelay         float64            `yaml:"output_delay" validate:"min=0"`
	OutputCooldown      float64            `yaml:"output_cooldown" validate:"min=0"`
	PowerCapacity       float64            `yaml:"power_capacity" validate:"gt=0"`
	AutomaticCraft      bool               `yaml:"automatic_craft"`
	HighValueFuel       string             `yaml:"high_value_fuel"`
	FuelInputs          []string           `yaml:"fuel_inputs"`
	CraftIntakeCapacity uint               `yaml:"craft_intake_capacity"`
	FuelIntakeCapacity  uint               `yaml:"fuel_intake_capacity"`
	ConsumeRecipes      bool               `yaml:"consume_recipes"`
	Recipes             []RecipeDefinition `yaml:"recipes" validate:"dive"`
}

// RocketPadDefinition configures the rocket pad and the rocket it builds
type RocketPadDefinition struct {
	FuelCapacity uint     `yaml:"fuel_capacity"`
	Payload      []string `yaml:"payload"`
}

// MonsterDefinition configures the monster
type MonsterDefinition struct {
	HungerCapacity float64 `yaml:"hunger_capacity" validate:"gt=0"`
	MinHunger      float64 `yaml:"min_hunger" validate:"min=0,ltefield=HungerCapacity"`
	EatDelay       float64 `yaml:"eat_delay" validate:"min=0"`
	EatCooldown    float64 `yaml:"eat_cooldown" validate:"min=0"`
	MouthCapacity  uint    `yaml:"mouth_capacity"`
}

// LootDefinition is a weighted drop
type LootDefinition struct {
	Item   string  `yaml:"item" validate:"required"`
	Weight float64 `yaml:"weight" validate:"gt=0"`
}

// DepositDefinition configures a resource deposit
type DepositDefinition struct {
	Name      string           `yaml:"name" validate:"required"`
	HitPoints uint             `yaml:"hit_points" validate:"min=1"`
	LootMin   int              `yaml:"loot_min" validate:"min=0"`
	LootMax   int              `yaml:"loot_max" validate:"gtefield=LootMin"`
	Loots     []LootDefinition `yaml:"loots" validate:"dive"`
}

// ScriptEventDefinition is a scripted player action
type ScriptEventDefinition struct {
	At     float64 `yaml:"at" validate:"min=0"`
	Action string  `yaml:"action" validate:"required,oneof=deposit interact craft select_recipe hit land collide grab release"`
	Target string  `yaml:"target"`
	Intake string  `yaml:"intake"`
	Item   string  `yaml:"item" validate:"required_if=Action deposit"`
	Count  uint    `yaml:"count"`
	Index  int     `yaml:"index"`
}

// LoadWorldDefinition reads and validates a world file
func LoadWorldDefinition(path string) (*WorldDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}

	def, err := ParseWorldDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("world file %s: %w", path, err)
	}
	return def, nil
}

// ParseWorldDefinition decodes a world definition; unknown keys are rejected
func ParseWorldDefinition(data []byte) (*WorldDefinition, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var def WorldDefinition
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse world definition: %w", err)
	}

	if err := NewValidator().Validate(&def); err != nil {
		return nil, err
	}
	return &def, nil
}
