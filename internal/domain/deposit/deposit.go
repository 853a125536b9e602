package deposit

import (
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// RandomSource yields uniform values in [0,1)
type RandomSource interface {
	Float64() float64
}

// RangeInt is an inclusive integer range sampled by fraction
type RangeInt struct {
	Min int
	Max int
}

// Extent returns Max - Min
func (r RangeInt) Extent() int {
	return r.Max - r.Min
}

// Evaluate maps t in [0,1] onto the range, truncating toward Min
func (r RangeInt) Evaluate(t float64) int {
	return r.Min + int(float64(r.Extent())*shared.Clamp01(t))
}

// Loot is a weighted entry of a deposit's drop table
type Loot struct {
	Name   string
	Weight float64
}

// Config holds deposit tunables
type Config struct {
	HitPoints uint
	LootCount RangeInt
	Loots     []Loot
}

// Deposit is a resource node that breaks after a number of hits and drops loot
type Deposit struct {
	shared.Interactable

	name      string
	hitPoints uint
	lootCount RangeInt
	loots     []Loot
	dead      bool

	spawner catalog.Spawner
	random  RandomSource

	OnHit shared.Listeners[uint]
	OnDie shared.Listeners[[]catalog.ItemHandle]
}

// NewDeposit validates the loot table against the catalog
func NewDeposit(name string, config Config, items *catalog.Catalog, spawner catalog.Spawner, random RandomSource) (*Deposit, error) {
	if items == nil || spawner == nil || random == nil {
		return nil, shared.NewConfigurationError(fmt.Sprintf("deposit %s: catalog, spawner and random source are required", name))
	}
	if config.HitPoints == 0 {
		return nil, fmt.Errorf("deposit %s: hit points must be positive", name)
	}
	if config.LootCount.Min < 0 || config.LootCount.Max < config.LootCount.Min {
		return nil, fmt.Errorf("deposit %s: invalid loot count range [%d, %d]", name, config.LootCount.Min, config.LootCount.Max)
	}
	for _, loot := range config.Loots {
		if loot.Weight < 0 {
			return nil, fmt.Errorf("deposit %s: loot %s has negative weight", name, loot.Name)
		}
		if _, err := items.Lookup(loot.Name); err != nil {
			return nil, fmt.Errorf("deposit %s: %w", name, err)
		}
	}

	return &Deposit{
		name:      name,
		hitPoints: config.HitPoints,
		lootCount: config.LootCount,
		loots:     append([]Loot(nil), config.Loots...),
		spawner:   spawner,
		random:    random,
	}, nil
}

func (d *Deposit) Name() string {
	return d.name
}

func (d *Deposit) HitPoints() uint {
	return d.hitPoints
}

func (d *Deposit) Dead() bool {
	return d.dead
}

// CanBeInteractedWith is false once the deposit broke
func (d *Deposit) CanBeInteractedWith() bool {
	return d.IsInteractable() && !d.dead
}

// Interact hits the deposit
func (d *Deposit) Interact() (bool, error) {
	if !d.CanBeInteractedWith() {
		return false, nil
	}
	if _, err := d.Hit(); err != nil {
		return true, err
	}
	return true, nil
}

// Hit removes one hit point and breaks the deposit at zero. Returns whether it broke.
func (d *Deposit) Hit() (bool, error) {
	if d.dead {
		return false, nil
	}

	d.hitPoints--
	d.dead = d.hitPoints == 0
	d.OnHit.Notify(d.hitPoints)

	if !d.dead {
		return false, nil
	}
	return true, d.die()
}

func (d *Deposit) die() error {
	count := d.lootCount.Evaluate(d.random.Float64())
	drops := make([]catalog.ItemHandle, 0, count)
	for i := 0; i < count; i++ {
		handle, err := d.loot()
		if err != nil {
			return err
		}
		if handle != nil {
			drops = append(drops, handle)
		}
	}
	d.SetInteractable(false)
	d.OnDie.Notify(drops)
	return nil
}

// loot spawns one weighted pick from the drop table
func (d *Deposit) loot() (catalog.ItemHandle, error) {
	var total float64
	for _, loot := range d.loots {
		total += loot.Weight
	}

	desired := total * d.random.Float64()
	var current float64
	for _, loot := range d.loots {
		current += loot.Weight
		if desired > current {
			continue
		}
		handle, err := d.spawner.SpawnItem(loot.Name)
		if err != nil {
			return nil, fmt.Errorf("deposit %s: %w", d.name, err)
		}
		handle.Release()
		return handle, nil
	}
	return nil, nil
}

func (d *Deposit) String() string {
	return fmt.Sprintf("Deposit(%s hp=%d)", d.name, d.hitPoints)
}
