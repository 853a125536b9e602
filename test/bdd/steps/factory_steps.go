package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/outpost-go/internal/domain/manufacturing"
	"github.com/andrescamacho/outpost-go/test/helpers"
)

// stepSize is the simulated time covered by one Tick and FixedTick pair
const stepSize = 0.5

type factoryContext struct {
	catalog *CatalogContext

	config  manufacturing.FactoryConfig
	recipes []manufacturing.Recipe

	factory *manufacturing.Factory
	spawner *helpers.MockSpawner
	crafted []manufacturing.RecipeCrafted
	offered bool
	started bool
}

func (fc *factoryContext) reset() {
	fc.config = manufacturing.FactoryConfig{}
	fc.recipes = nil
	fc.factory = nil
	fc.spawner = nil
	fc.crafted = nil
	fc.offered = false
	fc.started = false
}

// build creates the factory lazily so Given steps can keep adjusting the config
func (fc *factoryContext) build() error {
	if fc.factory != nil {
		return nil
	}

	items := fc.catalog.Items()
	fc.spawner = helpers.NewMockSpawner(items)

	factory, err := manufacturing.NewFactory("workshop", fc.config, fc.recipes, items, fc.spawner)
	if err != nil {
		return err
	}
	factory.OnRecipeCrafted.Add(func(e manufacturing.RecipeCrafted) {
		fc.crafted = append(fc.crafted, e)
	})
	fc.factory = factory
	return nil
}

// ============================================================================
// Given Steps
// ============================================================================

func (fc *factoryContext) aFactoryWithPowerCapacity(capacity float64) error {
	fc.config.PowerCapacity = capacity
	fc.config.OutputDelay = 1
	fc.config.OutputCooldown = stepSize
	return nil
}

func (fc *factoryContext) theFactoryCraftsAutomatically() error {
	fc.config.AutomaticCraft = true
	return nil
}

func (fc *factoryContext) theFactoryBurnsForever(name string) error {
	fc.config.HighValueFuel = name
	return nil
}

func (fc *factoryContext) theFactoryOnlyBurns(names string) error {
	fc.config.FuelInputs = splitNames(names)
	return nil
}

func (fc *factoryContext) theRecipes(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		duration, err := strconv.ParseFloat(getCellValue(table, row, "duration"), 64)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
		input, err := parseStacks(getCellValue(table, row, "input"))
		if err != nil {
			return err
		}
		output, err := parseStacks(getCellValue(table, row, "output"))
		if err != nil {
			return err
		}

		fc.recipes = append(fc.recipes, manufacturing.Recipe{
			Name:     getCellValue(table, row, "name"),
			Duration: duration,
			Input:    input,
			Output:   output,
		})
	}
	return nil
}

// ============================================================================
// When Steps
// ============================================================================

func (fc *factoryContext) iDeliverToTheCraftIntake(count int, name string) error {
	if err := fc.build(); err != nil {
		return err
	}
	fc.factory.CraftIntake().Inventory.Add(name, uint(count))
	return nil
}

func (fc *factoryContext) iDeliverOneToTheFuelIntake(name string) error {
	if err := fc.build(); err != nil {
		return err
	}
	item, err := fc.catalog.Items().Lookup(name)
	if err != nil {
		return err
	}
	fc.offered = fc.factory.FuelIntake().Offer(item)
	return nil
}

func (fc *factoryContext) theFactoryStartsCrafting() error {
	if err := fc.build(); err != nil {
		return err
	}
	fc.started = fc.factory.TryCraft()
	return nil
}

func (fc *factoryContext) theSimulationRunsForSeconds(seconds float64) error {
	if err := fc.build(); err != nil {
		return err
	}
	steps := int(math.Round(seconds / stepSize))
	for i := 0; i < steps; i++ {
		fc.factory.Tick(stepSize)
		if err := fc.factory.FixedTick(stepSize); err != nil {
			return err
		}
	}
	return nil
}

// ============================================================================
// Then Steps
// ============================================================================

func (fc *factoryContext) theCraftShouldHaveStarted(outcome string) error {
	expected := outcome == "started"
	if fc.started != expected {
		return fmt.Errorf("expected craft to be %s", outcome)
	}
	return nil
}

func (fc *factoryContext) theFactoryShouldBe(state string) error {
	if got := fc.factory.State(); string(got) != state {
		return fmt.Errorf("expected factory state %s, got %s", state, got)
	}
	return nil
}

func (fc *factoryContext) theFactoryShouldBeOutOfPower() error {
	if !fc.factory.IsOutOfPower() {
		return fmt.Errorf("expected factory to be out of power, power is %.2f", fc.factory.Power())
	}
	return nil
}

func (fc *factoryContext) theFactoryShouldBeUraniumPowered() error {
	if !fc.factory.UraniumPowered() {
		return fmt.Errorf("expected factory to run on its high-value fuel")
	}
	return nil
}

func (fc *factoryContext) theCraftProgressShouldBe(expected float64) error {
	if got := fc.factory.CraftProgress(); math.Abs(got-expected) > 1e-9 {
		return fmt.Errorf("expected craft progress %.2f, got %.2f", expected, got)
	}
	return nil
}

func (fc *factoryContext) theFactoryPowerShouldBe(expected float64) error {
	if got := fc.factory.Power(); math.Abs(got-expected) > 1e-9 {
		return fmt.Errorf("expected power %.2f, got %.2f", expected, got)
	}
	return nil
}

func (fc *factoryContext) theReleasedItemsShouldBe(list string) error {
	got := strings.Join(fc.spawner.Released(), ", ")
	if got != list {
		return fmt.Errorf("expected released items %q, got %q", list, got)
	}
	return nil
}

func (fc *factoryContext) theCraftIntakeShouldHold(expected int, name string) error {
	if got := fc.factory.CraftIntake().Inventory.Count(name); got != uint(expected) {
		return fmt.Errorf("expected craft intake to hold %d %s, got %d", expected, name, got)
	}
	return nil
}

func (fc *factoryContext) theFuelDeliveryShouldBe(outcome string) error {
	expected := outcome == "accepted"
	if fc.offered != expected {
		return fmt.Errorf("expected fuel delivery to be %s", outcome)
	}
	return nil
}

func (fc *factoryContext) recipesShouldHaveCompleted(expected int) error {
	if len(fc.crafted) != expected {
		return fmt.Errorf("expected %d completed crafts, got %d", expected, len(fc.crafted))
	}
	return nil
}

// parseStacks reads "Wood×2, Iron" style lists; a bare name means one unit
func parseStacks(list string) ([]manufacturing.ItemStack, error) {
	var stacks []manufacturing.ItemStack
	for _, part := range splitNames(list) {
		name, count, found := strings.Cut(part, "×")
		if !found {
			stacks = append(stacks, manufacturing.ItemStack{Name: part, Count: 1})
			continue
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("invalid stack %q: %w", part, err)
		}
		stacks = append(stacks, manufacturing.ItemStack{Name: name, Count: uint(n)})
	}
	return stacks, nil
}

// InitializeFactoryScenario registers the factory craft cycle steps
func InitializeFactoryScenario(sc *godog.ScenarioContext, cc *CatalogContext) {
	fc := &factoryContext{catalog: cc}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		fc.reset()
		return ctx, nil
	})

	// Given
	sc.Step(`^a factory with power capacity (\d+(?:\.\d+)?)$`, fc.aFactoryWithPowerCapacity)
	sc.Step(`^the factory crafts automatically$`, fc.theFactoryCraftsAutomatically)
	sc.Step(`^the factory burns "([^"]*)" forever$`, fc.theFactoryBurnsForever)
	sc.Step(`^the factory only burns "([^"]*)"$`, fc.theFactoryOnlyBurns)
	sc.Step(`^the recipes:$`, fc.theRecipes)

	// When
	sc.Step(`^I deliver (\d+) "([^"]*)" to the craft intake$`, fc.iDeliverToTheCraftIntake)
	sc.Step(`^I deliver one "([^"]*)" to the fuel intake$`, fc.iDeliverOneToTheFuelIntake)
	sc.Step(`^the factory starts crafting$`, fc.theFactoryStartsCrafting)
	sc.Step(`^the simulation runs for (\d+(?:\.\d+)?) seconds?$`, fc.theSimulationRunsForSeconds)

	// Then
	sc.Step(`^the craft should have (started|been refused)$`, fc.theCraftShouldHaveStarted)
	sc.Step(`^the factory should be (IDLE|CRAFTING|OUTPUT_DELAY|DROPPING)$`, fc.theFactoryShouldBe)
	sc.Step(`^the factory should be out of power$`, fc.theFactoryShouldBeOutOfPower)
	sc.Step(`^the factory should run on its high-value fuel$`, fc.theFactoryShouldBeUraniumPowered)
	sc.Step(`^the craft progress should be (\d+(?:\.\d+)?)$`, fc.theCraftProgressShouldBe)
	sc.Step(`^the factory power should be (\d+(?:\.\d+)?)$`, fc.theFactoryPowerShouldBe)
	sc.Step(`^the released items should be "([^"]*)"$`, fc.theReleasedItemsShouldBe)
	sc.Step(`^the craft intake should hold (\d+) "([^"]*)"$`, fc.theCraftIntakeShouldHold)
	sc.Step(`^the fuel delivery should be (accepted|rejected)$`, fc.theFuelDeliveryShouldBe)
	sc.Step(`^(\d+) recipes? should have completed$`, fc.recipesShouldHaveCompleted)
}
