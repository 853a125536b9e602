package simulation

import (
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/deposit"
	"github.com/andrescamacho/outpost-go/internal/domain/inventory"
	"github.com/andrescamacho/outpost-go/internal/domain/manufacturing"
	"github.com/andrescamacho/outpost-go/internal/domain/monster"
	"github.com/andrescamacho/outpost-go/internal/domain/rocket"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// GameStatus is the outcome state of a world
type GameStatus string

const (
	GameStatusRunning  GameStatus = "RUNNING"
	GameStatusLaunched GameStatus = "LAUNCHED"
	GameStatusLost     GameStatus = "LOST"
)

// Well-known target and intake names
const (
	TargetPad     = "pad"
	TargetRocket  = "rocket"
	TargetMonster = "monster"

	IntakeCraft = "craft"
	IntakeFuel  = "fuel"
	IntakeParts = "parts"
	IntakeMouth = "mouth"
)

// World owns every simulated component and advances them in registration order.
// It is not safe for concurrent use; the Runner serialises access.
type World struct {
	items   *catalog.Catalog
	spawner catalog.Spawner
	player  *Player

	factories    []*manufacturing.Factory
	factoryIndex map[string]*manufacturing.Factory
	pad          *rocket.RocketPad
	monster      *monster.Monster
	deposits     []*deposit.Deposit
	depositIndex map[string]*deposit.Deposit

	elapsed float64
	status  GameStatus

	OnEvent shared.Listeners[Event]
}

// NewWorld creates an empty running world
func NewWorld(items *catalog.Catalog, spawner catalog.Spawner) (*World, error) {
	if items == nil || spawner == nil {
		return nil, shared.NewConfigurationError("world: catalog and spawner are required")
	}
	return &World{
		items:        items,
		spawner:      spawner,
		player:       NewPlayer(),
		factoryIndex: make(map[string]*manufacturing.Factory),
		depositIndex: make(map[string]*deposit.Deposit),
		status:       GameStatusRunning,
	}, nil
}

// Getters

func (w *World) Catalog() *catalog.Catalog {
	return w.items
}

func (w *World) Player() *Player {
	return w.player
}

func (w *World) Elapsed() float64 {
	return w.elapsed
}

func (w *World) Status() GameStatus {
	return w.status
}

func (w *World) Factories() []*manufacturing.Factory {
	return append([]*manufacturing.Factory(nil), w.factories...)
}

func (w *World) Factory(name string) (*manufacturing.Factory, bool) {
	f, ok := w.factoryIndex[name]
	return f, ok
}

func (w *World) RocketPad() *rocket.RocketPad {
	return w.pad
}

func (w *World) Monster() *monster.Monster {
	return w.monster
}

func (w *World) Deposits() []*deposit.Deposit {
	return append([]*deposit.Deposit(nil), w.deposits...)
}

// Registration

// AddFactory registers a factory; names must be unique across targets
func (w *World) AddFactory(f *manufacturing.Factory) error {
	if err := w.claimName(f.Name()); err != nil {
		return err
	}
	w.factories = append(w.factories, f)
	w.factoryIndex[f.Name()] = f

	f.OnRecipeCrafted.Add(func(e manufacturing.RecipeCrafted) {
		w.emit(Event{Kind: EventRecipeCrafted, Source: e.Factory, Item: e.Recipe.Name, Detail: fmt.Sprintf("index=%d", e.Index)})
	})
	f.OnItemDropped.Add(func(e manufacturing.ItemDropped) {
		w.emit(Event{Kind: EventItemDropped, Source: e.Factory, Item: e.Item, Count: 1})
	})
	return nil
}

// SetRocketPad registers the rocket pad and follows the rocket it builds
func (w *World) SetRocketPad(p *rocket.RocketPad) {
	w.pad = p

	p.OnPartDelivered.Add(func(name string) {
		w.emit(Event{Kind: EventPartDelivered, Source: TargetPad, Item: name, Count: 1})
	})
	p.OnRocketBuilt.Add(func(r *rocket.Rocket) {
		w.emit(Event{Kind: EventRocketBuilt, Source: TargetPad})

		r.OnLaunch.Add(func(struct{}) {
			w.emit(Event{Kind: EventRocketLaunched, Source: TargetRocket})
			w.setStatus(GameStatusLaunched)
		})
		r.OnCrash.Add(func(payload []catalog.ItemHandle) {
			w.emit(Event{Kind: EventRocketCrashed, Source: TargetRocket, Count: uint(len(payload))})
		})
	})
}

// BootstrapRocket builds and fuels the rocket as if every part had been delivered
func (w *World) BootstrapRocket() error {
	if w.pad == nil {
		return shared.NewInteractionError(TargetPad, "world has no rocket pad")
	}
	_, err := w.pad.Bootstrap()
	return err
}

// SetMonster registers the monster; its death loses the game
func (w *World) SetMonster(m *monster.Monster) {
	w.monster = m

	m.OnFed.Add(func(f monster.Fed) {
		w.emit(Event{Kind: EventMonsterFed, Source: TargetMonster, Item: f.Item, Count: f.Units})
	})
	m.OnDie.Add(func(struct{}) {
		w.emit(Event{Kind: EventMonsterDied, Source: TargetMonster})
		w.setStatus(GameStatusLost)
	})
}

// AddDeposit registers a deposit
func (w *World) AddDeposit(d *deposit.Deposit) error {
	if err := w.claimName(d.Name()); err != nil {
		return err
	}
	w.deposits = append(w.deposits, d)
	w.depositIndex[d.Name()] = d

	d.OnHit.Add(func(hp uint) {
		w.emit(Event{Kind: EventDepositHit, Source: d.Name(), Count: hp})
	})
	d.OnDie.Add(func(drops []catalog.ItemHandle) {
		w.emit(Event{Kind: EventDepositBroken, Source: d.Name(), Count: uint(len(drops))})
	})
	return nil
}

func (w *World) claimName(name string) error {
	switch name {
	case TargetPad, TargetRocket, TargetMonster:
		return shared.NewConfigurationError(fmt.Sprintf("world: %q is a reserved target name", name))
	}
	if _, exists := w.factoryIndex[name]; exists {
		return shared.NewConfigurationError(fmt.Sprintf("world: duplicate target name %q", name))
	}
	if _, exists := w.depositIndex[name]; exists {
		return shared.NewConfigurationError(fmt.Sprintf("world: duplicate target name %q", name))
	}
	return nil
}

// Simulation

// Tick advances factories, then the rocket pad, then the monster.
// A lost world no longer advances.
func (w *World) Tick(dt float64) error {
	if w.status == GameStatusLost {
		return nil
	}

	for _, f := range w.factories {
		f.Tick(dt)
	}
	if w.pad != nil {
		if err := w.pad.Tick(dt); err != nil {
			return err
		}
	}
	if w.monster != nil {
		w.monster.Tick(dt)
	}

	w.elapsed += dt
	return nil
}

// FixedTick advances the factory drops
func (w *World) FixedTick(dt float64) error {
	if w.status == GameStatusLost {
		return nil
	}
	for _, f := range w.factories {
		if err := f.FixedTick(dt); err != nil {
			return err
		}
	}
	return nil
}

// Intake resolves a named intake of a target
func (w *World) Intake(target, intake string) (*inventory.Intake, error) {
	if f, ok := w.factoryIndex[target]; ok {
		switch intake {
		case IntakeCraft:
			return f.CraftIntake(), nil
		case IntakeFuel:
			return f.FuelIntake(), nil
		}
		return nil, shared.NewInteractionError(target, fmt.Sprintf("factory has no %q intake", intake))
	}

	switch target {
	case TargetPad:
		if w.pad == nil {
			break
		}
		switch intake {
		case IntakeParts:
			return w.pad.PartIntake(), nil
		case IntakeFuel:
			return w.pad.FuelIntake(), nil
		}
		return nil, shared.NewInteractionError(target, fmt.Sprintf("rocket pad has no %q intake", intake))
	case TargetMonster:
		if w.monster == nil {
			break
		}
		if intake == IntakeMouth || intake == "" {
			return w.monster.Mouth(), nil
		}
		return nil, shared.NewInteractionError(target, fmt.Sprintf("monster has no %q intake", intake))
	}

	return nil, shared.NewInteractionError(target, "unknown target")
}

// Deposit offers count units of item to an intake one at a time and returns how
// many were accepted
func (w *World) Deposit(target, intake, item string, count uint) (uint, error) {
	data, err := w.items.Lookup(item)
	if err != nil {
		return 0, err
	}
	in, err := w.Intake(target, intake)
	if err != nil {
		return 0, err
	}

	var accepted uint
	for accepted < count && in.Offer(data) {
		accepted++
	}
	return accepted, nil
}

// Interact uses a target the way the player would
func (w *World) Interact(target string) (bool, error) {
	if f, ok := w.factoryIndex[target]; ok {
		return f.Interact(), nil
	}
	if d, ok := w.depositIndex[target]; ok {
		return d.Interact()
	}

	switch target {
	case TargetPad:
		if w.pad != nil {
			return w.pad.Interact()
		}
	case TargetRocket:
		if r := w.rocket(); r != nil {
			return r.Interact(w.player), nil
		}
		return false, nil
	}

	return false, shared.NewInteractionError(target, "unknown target")
}

// Craft asks a factory to start its selected recipe
func (w *World) Craft(target string) (bool, error) {
	f, ok := w.factoryIndex[target]
	if !ok {
		return false, shared.NewInteractionError(target, "unknown factory")
	}
	return f.TryCraft(), nil
}

// SelectRecipe selects a factory recipe by index
func (w *World) SelectRecipe(target string, index int) (int, error) {
	f, ok := w.factoryIndex[target]
	if !ok {
		return manufacturing.NoRecipe, shared.NewInteractionError(target, "unknown factory")
	}
	return f.SetSelectedRecipe(index), nil
}

// LandRocket starts the rocket's landing approach
func (w *World) LandRocket() bool {
	r := w.rocket()
	return r != nil && r.Land()
}

// CollideRocket reports ground contact to the rocket
func (w *World) CollideRocket() error {
	r := w.rocket()
	if r == nil {
		return nil
	}
	_, err := r.OnCollision()
	return err
}

// Hit strikes a deposit once
func (w *World) Hit(target string) (bool, error) {
	d, ok := w.depositIndex[target]
	if !ok {
		return false, shared.NewInteractionError(target, "unknown deposit")
	}
	return d.Hit()
}

func (w *World) rocket() *rocket.Rocket {
	if w.pad == nil {
		return nil
	}
	return w.pad.Rocket()
}

func (w *World) setStatus(status GameStatus) {
	if w.status == status || w.status == GameStatusLost {
		return
	}
	w.status = status
	w.emit(Event{Kind: EventStatusChanged, Detail: string(status)})
}

func (w *World) emit(e Event) {
	e.Time = w.elapsed
	w.OnEvent.Notify(e)
}
