package setup

import (
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/deposit"
	"github.com/andrescamacho/outpost-go/internal/domain/manufacturing"
	"github.com/andrescamacho/outpost-go/internal/domain/monster"
	"github.com/andrescamacho/outpost-go/internal/domain/rocket"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
	"github.com/andrescamacho/outpost-go/internal/infrastructure/config"
)

// BuildCatalog creates the item catalog of a world definition
func BuildCatalog(def *config.WorldDefinition) (*catalog.Catalog, error) {
	defs := make([]catalog.ItemData, 0, len(def.Items))
	for _, item := range def.Items {
		category, err := catalog.ParseCategory(item.Category)
		if err != nil {
			return nil, shared.NewConfigurationError(fmt.Sprintf("item %s: %v", item.Name, err))
		}
		defs = append(defs, catalog.ItemData{
			Name:           item.Name,
			Category:       category,
			FuelPower:      item.FuelPower,
			FoodHunger:     item.FoodHunger,
			PartBuildIndex: item.BuildIndex,
		})
	}
	return catalog.NewCatalog(defs)
}

// BuildWorld creates every component of a world definition and registers it in
// definition order. It also returns the sorted script.
func BuildWorld(
	def *config.WorldDefinition,
	items *catalog.Catalog,
	spawner catalog.Spawner,
	random deposit.RandomSource,
) (*simulation.World, []simulation.ScriptEvent, error) {
	world, err := simulation.NewWorld(items, spawner)
	if err != nil {
		return nil, nil, err
	}

	for _, fd := range def.Factories {
		factory, err := buildFactory(fd, items, spawner)
		if err != nil {
			return nil, nil, err
		}
		if err := world.AddFactory(factory); err != nil {
			return nil, nil, err
		}
	}

	if def.RocketPad != nil {
		pad, err := rocket.NewRocketPad(rocket.RocketConfig{
			FuelCapacity: def.RocketPad.FuelCapacity,
			Payload:      def.RocketPad.Payload,
		}, items, spawner)
		if err != nil {
			return nil, nil, err
		}
		world.SetRocketPad(pad)
	}

	if def.Monster != nil {
		m, err := monster.NewMonster(monster.Config{
			HungerCapacity: def.Monster.HungerCapacity,
			MinHunger:      def.Monster.MinHunger,
			EatDelay:       def.Monster.EatDelay,
			EatCooldown:    def.Monster.EatCooldown,
			MouthCapacity:  def.Monster.MouthCapacity,
		}, items)
		if err != nil {
			return nil, nil, err
		}
		world.SetMonster(m)
	}

	for _, dd := range def.Deposits {
		loots := make([]deposit.Loot, 0, len(dd.Loots))
		for _, loot := range dd.Loots {
			loots = append(loots, deposit.Loot{Name: loot.Item, Weight: loot.Weight})
		}
		d, err := deposit.NewDeposit(dd.Name, deposit.Config{
			HitPoints: dd.HitPoints,
			LootCount: deposit.RangeInt{Min: dd.LootMin, Max: dd.LootMax},
			Loots:     loots,
		}, items, spawner, random)
		if err != nil {
			return nil, nil, err
		}
		if err := world.AddDeposit(d); err != nil {
			return nil, nil, err
		}
	}

	script, err := BuildScript(def.Script)
	if err != nil {
		return nil, nil, err
	}
	return world, script, nil
}

func buildFactory(fd config.FactoryDefinition, items *catalog.Catalog, spawner catalog.Spawner) (*manufacturing.Factory, error) {
	recipes := make([]manufacturing.Recipe, 0, len(fd.Recipes))
	for _, rd := range fd.Recipes {
		recipes = append(recipes, manufacturing.Recipe{
			Name:     rd.Name,
			Duration: rd.Duration,
			Input:    stacks(rd.Input),
			Output:   stacks(rd.Output),
		})
	}

	factory, err := manufacturing.NewFactory(fd.Name, manufacturing.FactoryConfig{
		OutputDelay:         fd.OutputDelay,
		OutputCooldown:      fd.OutputCooldown,
		PowerCapacity:       fd.PowerCapacity,
		AutomaticCraft:      fd.AutomaticCraft,
		HighValueFuel:       fd.HighValueFuel,
		FuelInputs:          fd.FuelInputs,
		CraftIntakeCapacity: fd.CraftIntakeCapacity,
		FuelIntakeCapacity:  fd.FuelIntakeCapacity,
	}, recipes, items, spawner)
	if err != nil {
		return nil, err
	}

	if fd.ConsumeRecipes {
		manufacturing.AttachRecipeConsumer(factory)
	}
	return factory, nil
}

func stacks(defs []config.StackDefinition) []manufacturing.ItemStack {
	out := make([]manufacturing.ItemStack, 0, len(defs))
	for _, d := range defs {
		out = append(out, manufacturing.ItemStack{Name: d.Item, Count: d.Count})
	}
	return out
}

// BuildScript converts scripted actions and sorts them by time
func BuildScript(defs []config.ScriptEventDefinition) ([]simulation.ScriptEvent, error) {
	events := make([]simulation.ScriptEvent, 0, len(defs))
	for i, d := range defs {
		action := simulation.ScriptAction(d.Action)
		switch action {
		case simulation.ActionLand, simulation.ActionCollide, simulation.ActionGrab, simulation.ActionRelease:
		default:
			if d.Target == "" {
				return nil, shared.NewConfigurationError(fmt.Sprintf("script event %d: %s needs a target", i, d.Action))
			}
		}
		events = append(events, simulation.ScriptEvent{
			At:     d.At,
			Action: action,
			Target: d.Target,
			Intake: d.Intake,
			Item:   d.Item,
			Count:  d.Count,
			Index:  d.Index,
		})
	}
	return simulation.SortScript(events), nil
}
