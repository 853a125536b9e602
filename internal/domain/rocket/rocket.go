package rocket

import (
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// Pilot is the player actor a rocket seats on launch
type Pilot interface {
	IsGrabbing() bool
	Seat()
	Unseat()
}

// RocketConfig holds rocket tunables
type RocketConfig struct {
	FuelCapacity uint
	// Payload is spawned when the rocket crashes on landing
	Payload      []string
}

// Rocket stores integer fuel units and flies once full
type Rocket struct {
	shared.Interactable

	config     RocketConfig
	spawner    catalog.Spawner
	fuelStored uint

	flying    bool
	landing   bool
	destroyed bool
	pilot     Pilot

	OnPowerChanged shared.Listeners[float64]
	OnLaunch       shared.Listeners[struct{}]
	OnCrash        shared.Listeners[[]catalog.ItemHandle]
}

// NewRocket creates an empty rocket on the pad
func NewRocket(config RocketConfig, spawner catalog.Spawner) (*Rocket, error) {
	if spawner == nil {
		return nil, shared.NewConfigurationError("rocket: spawner is required")
	}
	return &Rocket{config: config, spawner: spawner}, nil
}

func (r *Rocket) FuelStored() uint {
	return r.fuelStored
}

func (r *Rocket) FuelCapacity() uint {
	return r.config.FuelCapacity
}

// FuelMissing returns how many units still fit
func (r *Rocket) FuelMissing() uint {
	return r.config.FuelCapacity - r.fuelStored
}

// Power returns the fuel fraction, 0 for a zero capacity rocket
func (r *Rocket) Power() float64 {
	if r.config.FuelCapacity == 0 {
		return 0
	}
	return float64(r.fuelStored) / float64(r.config.FuelCapacity)
}

func (r *Rocket) IsFull() bool {
	return r.fuelStored >= r.config.FuelCapacity
}

func (r *Rocket) Flying() bool {
	return r.flying
}

func (r *Rocket) Landing() bool {
	return r.landing
}

func (r *Rocket) Destroyed() bool {
	return r.destroyed
}

// AddFuel stores up to units and reports whether the rocket is now full
func (r *Rocket) AddFuel(units uint) bool {
	if units > r.FuelMissing() {
		units = r.FuelMissing()
	}
	if units > 0 {
		r.fuelStored += units
		r.OnPowerChanged.Notify(r.Power())
	}
	return r.IsFull()
}

// CanBeInteractedWith requires a full tank and empty pilot hands
func (r *Rocket) CanBeInteractedWith(pilot Pilot) bool {
	if !r.IsInteractable() || r.flying || r.destroyed || pilot == nil {
		return false
	}
	return r.IsFull() && !pilot.IsGrabbing()
}

// Interact launches the rocket with pilot seated
func (r *Rocket) Interact(pilot Pilot) bool {
	if !r.CanBeInteractedWith(pilot) {
		return false
	}
	r.flying = true
	r.pilot = pilot
	pilot.Seat()
	r.OnLaunch.Notify(struct{}{})
	return true
}

// Land starts the landing approach
func (r *Rocket) Land() bool {
	if !r.flying || r.landing {
		return false
	}
	r.landing = true
	return true
}

// OnCollision crashes the rocket when it touches down during landing.
// The pilot is unseated and the payload spawned; the returned handles belong to the caller.
func (r *Rocket) OnCollision() ([]catalog.ItemHandle, error) {
	if !r.flying || !r.landing || r.destroyed {
		return nil, nil
	}

	if r.pilot != nil {
		r.pilot.Unseat()
		r.pilot = nil
	}

	handles := make([]catalog.ItemHandle, 0, len(r.config.Payload))
	for _, name := range r.config.Payload {
		handle, err := r.spawner.SpawnItem(name)
		if err != nil {
			return handles, fmt.Errorf("rocket crash payload: %w", err)
		}
		handle.Release()
		handles = append(handles, handle)
	}

	r.flying = false
	r.landing = false
	r.destroyed = true
	r.OnCrash.Notify(handles)
	return handles, nil
}

func (r *Rocket) String() string {
	return fmt.Sprintf("Rocket(%d/%d flying=%t)", r.fuelStored, r.config.FuelCapacity, r.flying)
}
