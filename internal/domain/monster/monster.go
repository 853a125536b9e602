package monster

import (
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/consumption"
	"github.com/andrescamacho/outpost-go/internal/domain/inventory"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// Config holds monster tunables, all in seconds
type Config struct {
	HungerCapacity float64

	// MinHunger stops the hunger drain once satiety falls to it
	MinHunger     float64
	EatDelay      float64
	EatCooldown   float64
	MouthCapacity uint
}

// Fed is emitted every time the monster eats
type Fed struct {
	Item  string
	Units uint
}

// Monster starves unless fed through its mouth intake.
// Food is only eaten after an eat delay, and never while the eat cooldown runs.
type Monster struct {
	items *catalog.Catalog
	mouth *inventory.Intake

	hunger      *shared.Capacity
	minHunger   float64
	eatDelay    *shared.Timer
	eatCooldown *shared.Timer
	dead        bool

	OnFed shared.Listeners[Fed]
	OnDie shared.Listeners[struct{}]
}

// NewMonster creates a fully fed monster that accepts any food
func NewMonster(config Config, items *catalog.Catalog) (*Monster, error) {
	if items == nil {
		return nil, shared.NewConfigurationError("monster: catalog is required")
	}
	if config.MinHunger < 0 || config.MinHunger > config.HungerCapacity {
		return nil, fmt.Errorf("monster: min hunger must be within [0, %.2f]", config.HungerCapacity)
	}

	hunger, err := shared.NewCapacity(config.HungerCapacity, true)
	if err != nil {
		return nil, fmt.Errorf("monster: %w", err)
	}

	if config.MouthCapacity == 0 {
		config.MouthCapacity = inventory.DefaultMaxItemCount
	}
	mouth := inventory.NewIntake(config.MouthCapacity, false)
	mouth.Filter.AddOrUpdateRule(string(catalog.CategoryFood), true, true)

	return &Monster{
		items:       items,
		mouth:       mouth,
		hunger:      hunger,
		minHunger:   config.MinHunger,
		eatDelay:    shared.NewTimer(config.EatDelay),
		eatCooldown: shared.NewTimer(config.EatCooldown),
	}, nil
}

func (m *Monster) Mouth() *inventory.Intake {
	return m.mouth
}

func (m *Monster) Dead() bool {
	return m.dead
}

// Hunger returns the satiety fraction, 1 when fully fed
func (m *Monster) Hunger() float64 {
	return m.hunger.Fraction()
}

// HungerCapacity returns the satiety store
func (m *Monster) HungerCapacity() *shared.Capacity {
	return m.hunger
}

// EatCooldown returns the remaining cooldown fraction
func (m *Monster) EatCooldown() float64 {
	return m.eatCooldown.Cooldown()
}

// Eating reports whether the monster is digesting
func (m *Monster) Eating() bool {
	return m.eatCooldown.IsStarted()
}

// Tick drains hunger, runs the eat timers and feeds from the mouth intake
func (m *Monster) Tick(dt float64) {
	if m.dead {
		return
	}

	if m.hunger.Current() > m.minHunger && m.hunger.Drain(dt) {
		m.Die()
		return
	}

	m.eatCooldown.Timeout(dt, false)

	if m.eatCooldown.IsStarted() || m.mouth.Inventory.IsEmpty() {
		return
	}

	if !m.eatDelay.IsStarted() {
		m.eatDelay.Start()
		return
	}
	if !m.eatDelay.Timeout(dt, false) {
		return
	}

	allocation, ok := consumption.Consume(m.mouth.Inventory, m.hunger, m.items.FoodValues(), consumption.Strict)
	if !ok {
		return
	}
	m.eatCooldown.Start()
	m.OnFed.Notify(Fed{Item: allocation.Item, Units: allocation.Units})
}

// Die kills the monster once
func (m *Monster) Die() {
	if m.dead {
		return
	}
	m.dead = true
	m.OnDie.Notify(struct{}{})
}

func (m *Monster) String() string {
	return fmt.Sprintf("Monster(hunger=%.2f dead=%t)", m.Hunger(), m.dead)
}
