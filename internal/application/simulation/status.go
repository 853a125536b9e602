package simulation

import (
	"github.com/andrescamacho/outpost-go/internal/domain/inventory"
	"github.com/andrescamacho/outpost-go/internal/domain/manufacturing"
)

// StackStatus is a read-only inventory entry
type StackStatus struct {
	Name  string `json:"name"`
	Count uint   `json:"count"`
}

// FactoryStatus is a read-only view of one factory
type FactoryStatus struct {
	Name           string        `json:"name"`
	State          string        `json:"state"`
	Recipe         string        `json:"recipe,omitempty"`
	RecipeIndex    int           `json:"recipe_index"`
	Power          float64       `json:"power"`
	UraniumPowered bool          `json:"uranium_powered"`
	CraftProgress  float64       `json:"craft_progress"`
	DropProgress   float64       `json:"drop_progress"`
	Queue          []string      `json:"queue,omitempty"`
	CraftIntake    []StackStatus `json:"craft_intake,omitempty"`
	FuelIntake     []StackStatus `json:"fuel_intake,omitempty"`
	AcceptedFuel   []string      `json:"accepted_fuel,omitempty"`
}

// RocketStatus is a read-only view of the rocket and its pad
type RocketStatus struct {
	Parts        int     `json:"parts"`
	PartCount    int     `json:"part_count"`
	Progress     float64 `json:"progress"`
	NextPart     string  `json:"next_part,omitempty"`
	Built        bool    `json:"built"`
	FuelStored   uint    `json:"fuel_stored"`
	FuelCapacity uint    `json:"fuel_capacity"`
	Power        float64 `json:"power"`
	Flying       bool    `json:"flying"`
	Destroyed    bool    `json:"destroyed"`
}

// MonsterStatus is a read-only view of the monster
type MonsterStatus struct {
	Hunger      float64       `json:"hunger"`
	EatCooldown float64       `json:"eat_cooldown"`
	Dead        bool          `json:"dead"`
	Mouth       []StackStatus `json:"mouth,omitempty"`
}

// DepositStatus is a read-only view of a deposit
type DepositStatus struct {
	Name      string `json:"name"`
	HitPoints uint   `json:"hit_points"`
	Dead      bool   `json:"dead"`
}

// WorldStatus is a settled snapshot taken between ticks
type WorldStatus struct {
	Elapsed   float64         `json:"elapsed"`
	Status    string          `json:"status"`
	Factories []FactoryStatus `json:"factories"`
	Rocket    *RocketStatus   `json:"rocket,omitempty"`
	Monster   *MonsterStatus  `json:"monster,omitempty"`
	Deposits  []DepositStatus `json:"deposits,omitempty"`
}

// Snapshot builds a WorldStatus
func (w *World) Snapshot() WorldStatus {
	status := WorldStatus{
		Elapsed: w.elapsed,
		Status:  string(w.status),
	}

	for _, f := range w.factories {
		status.Factories = append(status.Factories, factoryStatus(f))
	}

	if w.pad != nil {
		rs := &RocketStatus{
			Parts:     w.pad.Parts(),
			PartCount: w.pad.PartCount(),
			Progress:  w.pad.Progress(),
		}
		if next, ok := w.pad.NextPart(); ok {
			rs.NextPart = next.Name
		}
		if r := w.pad.Rocket(); r != nil {
			rs.Built = true
			rs.FuelStored = r.FuelStored()
			rs.FuelCapacity = r.FuelCapacity()
			rs.Power = r.Power()
			rs.Flying = r.Flying()
			rs.Destroyed = r.Destroyed()
		}
		status.Rocket = rs
	}

	if w.monster != nil {
		status.Monster = &MonsterStatus{
			Hunger:      w.monster.Hunger(),
			EatCooldown: w.monster.EatCooldown(),
			Dead:        w.monster.Dead(),
			Mouth:       stackStatuses(w.monster.Mouth().Inventory),
		}
	}

	for _, d := range w.deposits {
		status.Deposits = append(status.Deposits, DepositStatus{
			Name:      d.Name(),
			HitPoints: d.HitPoints(),
			Dead:      d.Dead(),
		})
	}

	return status
}

func factoryStatus(f *manufacturing.Factory) FactoryStatus {
	fs := FactoryStatus{
		Name:           f.Name(),
		State:          string(f.State()),
		RecipeIndex:    f.SelectedIndex(),
		Power:          f.Power(),
		UraniumPowered: f.UraniumPowered(),
		CraftProgress:  f.CraftProgress(),
		DropProgress:   f.DropProgress(),
		Queue:          f.Queue(),
		CraftIntake:    stackStatuses(f.CraftIntake().Inventory),
		FuelIntake:     stackStatuses(f.FuelIntake().Inventory),
	}
	if recipe, ok := f.SelectedRecipe(); ok {
		fs.Recipe = recipe.Name
	}
	for _, stack := range f.AcceptedFuel() {
		fs.AcceptedFuel = append(fs.AcceptedFuel, stack.Name)
	}
	return fs
}

func stackStatuses(inv *inventory.Inventory) []StackStatus {
	var out []StackStatus
	for _, stack := range inv.Stacks() {
		out = append(out, StackStatus{Name: stack.Name, Count: stack.Count})
	}
	return out
}
