package rocket

import (
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/consumption"
	"github.com/andrescamacho/outpost-go/internal/domain/inventory"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// RocketPad assembles a rocket from catalog parts in build order and then fuels it.
//
// The part intake holds a single unit and only accepts the next required part.
// Once the rocket exists the fuel intake capacity tracks the rocket's free fuel space.
type RocketPad struct {
	shared.Interactable

	items   *catalog.Catalog
	spawner catalog.Spawner
	config  RocketConfig

	parts      []catalog.ItemData
	delivered  []catalog.ItemHandle
	partIntake *inventory.Intake
	fuelIntake *inventory.Intake
	rocket     *Rocket

	OnPartDelivered shared.Listeners[string]
	OnRocketBuilt   shared.Listeners[*Rocket]
}

// NewRocketPad creates an empty pad waiting for the first part
func NewRocketPad(config RocketConfig, items *catalog.Catalog, spawner catalog.Spawner) (*RocketPad, error) {
	if items == nil || spawner == nil {
		return nil, shared.NewConfigurationError("rocket pad: catalog and spawner are required")
	}
	for _, name := range config.Payload {
		if _, err := items.Lookup(name); err != nil {
			return nil, fmt.Errorf("rocket pad payload: %w", err)
		}
	}

	p := &RocketPad{
		items:      items,
		spawner:    spawner,
		config:     config,
		parts:      items.RocketParts(),
		partIntake: inventory.NewIntake(1, false),
		fuelIntake: inventory.NewIntake(0, false),
	}
	p.updatePartFilter()
	return p, nil
}

func (p *RocketPad) PartIntake() *inventory.Intake {
	return p.partIntake
}

func (p *RocketPad) FuelIntake() *inventory.Intake {
	return p.fuelIntake
}

// Rocket returns the built rocket or nil
func (p *RocketPad) Rocket() *Rocket {
	return p.rocket
}

// PartCount returns how many parts the rocket needs
func (p *RocketPad) PartCount() int {
	return len(p.parts)
}

// Parts returns how many parts have been delivered
func (p *RocketPad) Parts() int {
	return len(p.delivered)
}

// NextPart returns the next required part, if any
func (p *RocketPad) NextPart() (catalog.ItemData, bool) {
	if len(p.delivered) >= len(p.parts) {
		return catalog.ItemData{}, false
	}
	return p.parts[len(p.delivered)], true
}

// Progress returns the delivered part fraction
func (p *RocketPad) Progress() float64 {
	if len(p.parts) == 0 {
		return 1
	}
	return float64(len(p.delivered)) / float64(len(p.parts))
}

// CanBeInteractedWith is true once every part is delivered and no rocket exists
func (p *RocketPad) CanBeInteractedWith() bool {
	return p.IsInteractable() && p.rocket == nil && len(p.delivered) == len(p.parts)
}

// Interact builds the rocket
func (p *RocketPad) Interact() (bool, error) {
	if !p.CanBeInteractedWith() {
		return false, nil
	}
	if _, err := p.CraftRocket(); err != nil {
		return false, err
	}
	return true, nil
}

// CraftRocket replaces the stacked parts with a rocket and opens the fuel intake
func (p *RocketPad) CraftRocket() (*Rocket, error) {
	if !p.CanBeInteractedWith() {
		return nil, shared.NewInteractionError("rocket pad", "rocket parts are missing")
	}

	rocket, err := NewRocket(p.config, p.spawner)
	if err != nil {
		return nil, err
	}

	for _, handle := range p.delivered {
		handle.Destroy()
	}
	p.rocket = rocket

	p.partIntake.Filter.DenyAll()
	p.fuelIntake.Filter.DenyAll()
	p.fuelIntake.Filter.AddOrUpdateRule(string(catalog.CategoryFuel), true, true)
	p.syncFuelIntake()

	p.OnRocketBuilt.Notify(rocket)
	return rocket, nil
}

// Bootstrap delivers every missing part, builds the rocket and fills its tank
func (p *RocketPad) Bootstrap() (*Rocket, error) {
	if p.rocket != nil {
		return p.rocket, nil
	}

	for {
		next, ok := p.NextPart()
		if !ok {
			break
		}
		if err := p.deliver(next.Name); err != nil {
			return nil, err
		}
	}

	rocket, err := p.CraftRocket()
	if err != nil {
		return nil, err
	}
	rocket.AddFuel(rocket.FuelMissing())
	p.syncFuelIntake()
	return rocket, nil
}

// Tick stacks a delivered part and converts intake fuel into rocket fuel
func (p *RocketPad) Tick(dt float64) error {
	if next, ok := p.NextPart(); ok && p.partIntake.Inventory.Count(next.Name) > 0 {
		p.partIntake.Inventory.Remove(next.Name, 1)
		if err := p.deliver(next.Name); err != nil {
			return err
		}
	}

	if p.rocket == nil || p.rocket.IsFull() {
		return nil
	}

	missing := float64(p.rocket.FuelMissing())
	allocation, ok := consumption.Allocate(missing, p.fuelIntake.Inventory.Stacks(), p.items.UnitFuelValues(), consumption.Inclusive)
	if !ok {
		return nil
	}

	p.fuelIntake.Inventory.Remove(allocation.Item, allocation.Units)
	for i := uint(0); i < allocation.Units; i++ {
		if p.rocket.AddFuel(1) {
			break
		}
	}
	p.syncFuelIntake()
	return nil
}

func (p *RocketPad) deliver(name string) error {
	handle, err := p.spawner.SpawnItem(name)
	if err != nil {
		return fmt.Errorf("rocket pad: failed to stack part %s: %w", name, err)
	}
	p.delivered = append(p.delivered, handle)
	p.updatePartFilter()
	p.OnPartDelivered.Notify(name)
	return nil
}

func (p *RocketPad) updatePartFilter() {
	if next, ok := p.NextPart(); ok {
		p.partIntake.Filter.AllowOnly(next.Name)
		return
	}
	p.partIntake.Filter.DenyAll()
}

func (p *RocketPad) syncFuelIntake() {
	if p.rocket == nil {
		return
	}
	p.fuelIntake.Inventory.SetMaxItemCount(p.rocket.FuelMissing())
	if p.rocket.IsFull() {
		p.fuelIntake.Filter.DenyAll()
	}
}

func (p *RocketPad) String() string {
	return fmt.Sprintf("RocketPad(%d/%d parts rocket=%t)", len(p.delivered), len(p.parts), p.rocket != nil)
}
