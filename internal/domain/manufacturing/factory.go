package manufacturing

import (
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/consumption"
	"github.com/andrescamacho/outpost-go/internal/domain/inventory"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// FactoryState is the position of a factory in its craft cycle
type FactoryState string

const (
	FactoryStateIdle        FactoryState = "IDLE"
	FactoryStateCrafting    FactoryState = "CRAFTING"
	FactoryStateOutputDelay FactoryState = "OUTPUT_DELAY"
	FactoryStateDropping    FactoryState = "DROPPING"
)

// NoRecipe is the selected index of a factory without recipes
const NoRecipe = -1

// FactoryConfig holds the tunables of a single factory
type FactoryConfig struct {
	OutputDelay    float64
	OutputCooldown float64
	PowerCapacity  float64
	AutomaticCraft bool

	// HighValueFuel powers the factory forever once delivered
	HighValueFuel string
	// FuelInputs are the fuel names the fuel intake accepts; empty accepts any fuel
	FuelInputs    []string

	CraftIntakeCapacity uint
	FuelIntakeCapacity  uint
}

// RecipeCrafted is emitted when a craft timer completes. Recipe and Index are
// the ones captured when the craft started; Index is NoRecipe when that recipe
// was removed from the table mid-craft.
type RecipeCrafted struct {
	Factory string
	Recipe  Recipe
	Index   int
}

// ItemDropped is emitted when an output item is handed to the world
type ItemDropped struct {
	Factory string
	Item    string
}

// Factory turns intake items into output items while it has power.
//
// Craft cycle: IDLE -> CRAFTING -> OUTPUT_DELAY -> DROPPING -> IDLE.
// Tick drives crafting and the output delay, FixedTick drives the drop.
// Fuel is consumed on every Tick, after the craft cycle.
type Factory struct {
	shared.Interactable

	name    string
	config  FactoryConfig
	items   *catalog.Catalog
	spawner catalog.Spawner

	recipes  []Recipe
	selected int

	// recipe and table index captured by the running craft
	craftingRecipe Recipe
	craftingIndex  int

	craftIntake *inventory.Intake
	fuelIntake  *inventory.Intake

	power          *shared.Capacity
	uraniumPowered bool

	state          FactoryState
	craftTimer     *shared.Timer
	outputDelay    *shared.Timer
	outputCooldown *shared.Timer
	queue          []string
	inFlight       catalog.ItemHandle

	OnRecipeCrafted shared.Listeners[RecipeCrafted]
	OnItemDropped   shared.Listeners[ItemDropped]
}

// NewFactory creates an idle, fully powered factory with recipe 0 selected
func NewFactory(
	name string,
	config FactoryConfig,
	recipes []Recipe,
	items *catalog.Catalog,
	spawner catalog.Spawner,
) (*Factory, error) {
	if name == "" {
		return nil, fmt.Errorf("factory name cannot be empty")
	}
	if items == nil || spawner == nil {
		return nil, shared.NewConfigurationError(fmt.Sprintf("factory %s: catalog and spawner are required", name))
	}
	if config.OutputDelay < 0 || config.OutputCooldown < 0 {
		return nil, fmt.Errorf("factory %s: output timings cannot be negative", name)
	}
	for _, recipe := range recipes {
		if err := recipe.Validate(items); err != nil {
			return nil, fmt.Errorf("factory %s: %w", name, err)
		}
	}
	if config.HighValueFuel != "" {
		if _, err := items.Lookup(config.HighValueFuel); err != nil {
			return nil, fmt.Errorf("factory %s: %w", name, err)
		}
	}

	power, err := shared.NewCapacity(config.PowerCapacity, true)
	if err != nil {
		return nil, fmt.Errorf("factory %s: %w", name, err)
	}

	if config.CraftIntakeCapacity == 0 {
		config.CraftIntakeCapacity = inventory.DefaultMaxItemCount
	}
	if config.FuelIntakeCapacity == 0 {
		config.FuelIntakeCapacity = inventory.DefaultMaxItemCount
	}

	f := &Factory{
		name:           name,
		config:         config,
		items:          items,
		spawner:        spawner,
		recipes:        append([]Recipe(nil), recipes...),
		craftIntake:    inventory.NewIntake(config.CraftIntakeCapacity, false),
		fuelIntake:     inventory.NewIntake(config.FuelIntakeCapacity, false),
		power:          power,
		state:          FactoryStateIdle,
		craftTimer:     shared.NewTimer(0),
		outputDelay:    shared.NewTimer(config.OutputDelay),
		outputCooldown: shared.NewTimer(config.OutputCooldown),
		craftingIndex:  NoRecipe,
	}

	f.resetFuelFilter()
	f.craftIntake.Inventory.OnChanged.Add(func(struct{}) {
		if f.config.AutomaticCraft {
			f.TryCraft()
		}
	})
	f.SetSelectedRecipe(0)

	return f, nil
}

// resetFuelFilter puts the high-value fuel rule first so it can later be
// denied ahead of a category rule
func (f *Factory) resetFuelFilter() {
	filter := f.fuelIntake.Filter
	filter.DenyAll()

	if hv := f.config.HighValueFuel; hv != "" {
		filter.AddOrUpdateRule(hv, true, false)
	}
	for _, name := range f.config.FuelInputs {
		filter.AddOrUpdateRule(name, true, false)
	}
	if len(f.config.FuelInputs) == 0 {
		filter.AddOrUpdateRule(string(catalog.CategoryFuel), true, true)
	}
}

// Getters

func (f *Factory) Name() string {
	return f.name
}

func (f *Factory) Config() FactoryConfig {
	return f.config
}

func (f *Factory) State() FactoryState {
	return f.state
}

func (f *Factory) Crafting() bool {
	return f.state == FactoryStateCrafting
}

func (f *Factory) Dropping() bool {
	return f.state == FactoryStateDropping
}

func (f *Factory) CraftIntake() *inventory.Intake {
	return f.craftIntake
}

func (f *Factory) FuelIntake() *inventory.Intake {
	return f.fuelIntake
}

func (f *Factory) UraniumPowered() bool {
	return f.uraniumPowered
}

// Queue returns the names still waiting to be dropped
func (f *Factory) Queue() []string {
	return append([]string(nil), f.queue...)
}

// InFlight returns the item currently being dropped, or nil
func (f *Factory) InFlight() catalog.ItemHandle {
	return f.inFlight
}

// CraftProgress returns the craft timer progress in [0,1]
func (f *Factory) CraftProgress() float64 {
	return f.craftTimer.Progress()
}

// DropProgress returns the output cooldown progress in [0,1]
func (f *Factory) DropProgress() float64 {
	return f.outputCooldown.Progress()
}

// Power returns the stored energy fraction; always 1 once uranium powered
func (f *Factory) Power() float64 {
	if f.uraniumPowered {
		return 1
	}
	return f.power.Fraction()
}

// PowerCapacity returns the energy store
func (f *Factory) PowerCapacity() *shared.Capacity {
	return f.power
}

// IsOutOfPower reports whether crafting is blocked for lack of energy
func (f *Factory) IsOutOfPower() bool {
	return !f.uraniumPowered && f.power.IsEmpty()
}

// AcceptedFuel lists the fuel names the fuel intake currently allows
func (f *Factory) AcceptedFuel() []ItemStack {
	var names []string
	for _, rule := range f.fuelIntake.Filter.Rules() {
		if rule.Allowed && !rule.IsCategory {
			names = append(names, rule.Name)
		}
	}
	return StacksFromNames(names...)
}

// Recipes returns a copy of the recipe table
func (f *Factory) Recipes() []Recipe {
	return append([]Recipe(nil), f.recipes...)
}

// SelectedIndex returns the selected recipe index or NoRecipe
func (f *Factory) SelectedIndex() int {
	return f.selected
}

// SelectedRecipe returns the selected recipe, if any
func (f *Factory) SelectedRecipe() (Recipe, bool) {
	if f.selected == NoRecipe {
		return Recipe{}, false
	}
	return f.recipes[f.selected], true
}

// Recipe selection

// SetSelectedRecipe selects index modulo the table length, or NoRecipe for an
// empty table, and restricts the craft intake to the recipe inputs.
func (f *Factory) SetSelectedRecipe(index int) int {
	if len(f.recipes) == 0 {
		f.selected = NoRecipe
	} else {
		n := len(f.recipes)
		f.selected = ((index % n) + n) % n
	}

	if recipe, ok := f.SelectedRecipe(); ok {
		f.craftIntake.Filter.AllowOnly(recipe.InputNames()...)
	} else {
		f.craftIntake.Filter.DenyAll()
	}

	if f.config.AutomaticCraft {
		f.TryCraft()
	}
	return f.selected
}

// RemoveRecipe drops the recipe at index. The selection follows the recipe it
// pointed at; when that recipe is the one removed, the next one takes its slot.
func (f *Factory) RemoveRecipe(index int) bool {
	if index < 0 || index >= len(f.recipes) {
		return false
	}
	f.recipes = append(f.recipes[:index], f.recipes[index+1:]...)

	switch {
	case index < f.craftingIndex:
		f.craftingIndex--
	case index == f.craftingIndex:
		f.craftingIndex = NoRecipe
	}

	selected := f.selected
	if index < selected {
		selected--
	}
	f.SetSelectedRecipe(selected)
	return true
}

// CanBeInteractedWith is true only while idle
func (f *Factory) CanBeInteractedWith() bool {
	return f.IsInteractable() && f.state == FactoryStateIdle
}

// Interact cycles to the next recipe
func (f *Factory) Interact() bool {
	if !f.CanBeInteractedWith() {
		return false
	}
	f.SetSelectedRecipe(f.selected + 1)
	return true
}

// CheckRecipeInput reports whether the craft intake holds every input of the selected recipe
func (f *Factory) CheckRecipeInput() bool {
	recipe, ok := f.SelectedRecipe()
	if !ok {
		return false
	}
	for _, stack := range recipe.Input {
		if !f.craftIntake.Inventory.Has(stack.Name, stack.Count) {
			return false
		}
	}
	return true
}

// TryCraft starts the selected recipe when idle, powered and supplied
func (f *Factory) TryCraft() bool {
	if f.state != FactoryStateIdle || f.IsOutOfPower() || !f.CheckRecipeInput() {
		return false
	}

	recipe := f.recipes[f.selected]
	f.craftingRecipe = recipe
	f.craftingIndex = f.selected
	// State first: removing inputs fires inventory events that re-enter TryCraft
	f.state = FactoryStateCrafting
	f.craftTimer.SetDuration(recipe.Duration)
	f.craftTimer.Start()

	for _, stack := range recipe.Input {
		f.craftIntake.Inventory.Remove(stack.Name, stack.Count)
	}
	f.queue = append(f.queue, recipe.OutputQueue()...)
	return true
}

// Simulation

// Tick advances crafting and the output delay, then consumes fuel
func (f *Factory) Tick(dt float64) {
	if !f.IsOutOfPower() {
		switch f.state {
		case FactoryStateCrafting:
			if !f.uraniumPowered {
				f.power.Drain(dt)
			}
			if f.craftTimer.Timeout(dt, false) {
				f.state = FactoryStateOutputDelay
				f.OnRecipeCrafted.Notify(RecipeCrafted{
					Factory: f.name,
					Recipe:  f.craftingRecipe,
					Index:   f.craftingIndex,
				})
				f.outputDelay.Start()
			}
		case FactoryStateOutputDelay:
			if f.outputDelay.Timeout(dt, false) {
				f.state = FactoryStateDropping
			}
		case FactoryStateIdle:
			if f.config.AutomaticCraft {
				f.TryCraft()
			}
		}
	}

	f.refuel()
}

// FixedTick spawns queued outputs and moves the in-flight item along its drop
func (f *Factory) FixedTick(dt float64) error {
	if f.state != FactoryStateDropping {
		return nil
	}

	if f.inFlight == nil {
		if len(f.queue) == 0 {
			f.finishDropping()
			return nil
		}
		if f.IsOutOfPower() {
			return nil
		}
		if err := f.spawnNext(); err != nil {
			return err
		}
	}

	ended := f.outputCooldown.Timeout(dt, false)
	if ended {
		f.inFlight.SetDropProgress(1)
	} else {
		f.inFlight.SetDropProgress(f.outputCooldown.Progress())
	}
	if !ended {
		return nil
	}

	dropped := f.inFlight
	dropped.Release()
	f.inFlight = nil
	f.OnItemDropped.Notify(ItemDropped{Factory: f.name, Item: dropped.Name()})

	if len(f.queue) == 0 {
		f.finishDropping()
		return nil
	}
	if f.IsOutOfPower() {
		return nil
	}
	return f.spawnNext()
}

func (f *Factory) spawnNext() error {
	name := f.queue[0]
	handle, err := f.spawner.SpawnItem(name)
	if err != nil {
		return fmt.Errorf("factory %s: failed to spawn %s: %w", f.name, name, err)
	}
	f.queue = f.queue[1:]
	f.inFlight = handle
	handle.SetDropProgress(0)
	f.outputCooldown.Start()
	return nil
}

func (f *Factory) finishDropping() {
	f.state = FactoryStateIdle
	if f.config.AutomaticCraft {
		f.TryCraft()
	}
}

func (f *Factory) refuel() {
	fuel := f.fuelIntake.Inventory
	if fuel.IsEmpty() {
		return
	}

	if hv := f.config.HighValueFuel; hv != "" && fuel.Count(hv) > 0 {
		f.uraniumPowered = true
		fuel.RemoveAll(hv)
		f.fuelIntake.Filter.AddOrUpdateRule(hv, false, false)
		return
	}

	consumption.Consume(fuel, f.power, f.items.FuelValues(), consumption.Strict)
}

func (f *Factory) String() string {
	return fmt.Sprintf("Factory(%s %s power=%.2f queue=%d)", f.name, f.state, f.Power(), len(f.queue))
}
