package consumption

import (
	"fmt"
	"math"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/inventory"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// Comparison selects how an item's per-unit value is compared to the missing amount
type Comparison int

const (
	// Strict requires perUnit < missing (factory power, monster hunger)
	Strict Comparison = iota
	// Inclusive requires perUnit <= missing (rocket fuel)
	Inclusive
)

func (c Comparison) qualifies(perUnit, missing float64) bool {
	if c == Inclusive {
		return perUnit <= missing
	}
	return perUnit < missing
}

// Allocation is the chosen item and how many units of it to consume
type Allocation struct {
	Item    string
	Units   uint
	PerUnit float64
}

// Total returns the value the allocation covers
func (a Allocation) Total() float64 {
	return float64(a.Units) * a.PerUnit
}

func (a Allocation) String() string {
	return fmt.Sprintf("Allocation(%s x%d @%.2f)", a.Item, a.Units, a.PerUnit)
}

// Allocate picks the first stack whose per-unit value qualifies against missing
// and returns how many of its units fit. Items without an applicable value and
// items worth zero or less are skipped. ok is false when nothing is consumable.
func Allocate(missing float64, stacks []inventory.Stack, value catalog.ValueFunc, cmp Comparison) (Allocation, bool) {
	if missing <= 0 {
		return Allocation{}, false
	}

	for _, stack := range stacks {
		perUnit, applicable := value(stack.Name)
		if !applicable || perUnit <= 0 || stack.Count == 0 {
			continue
		}
		if !cmp.qualifies(perUnit, missing) {
			continue
		}

		units := uint(math.Floor(missing / perUnit))
		if units > stack.Count {
			units = stack.Count
		}
		if units == 0 {
			return Allocation{}, false
		}
		return Allocation{Item: stack.Name, Units: units, PerUnit: perUnit}, true
	}

	return Allocation{}, false
}

// Consume allocates against the capacity's missing amount, removes the units
// from the inventory and refills the capacity with their value.
func Consume(inv *inventory.Inventory, capacity *shared.Capacity, value catalog.ValueFunc, cmp Comparison) (Allocation, bool) {
	allocation, ok := Allocate(capacity.Missing(), inv.Stacks(), value, cmp)
	if !ok {
		return Allocation{}, false
	}

	inv.Remove(allocation.Item, allocation.Units)
	capacity.Refill(allocation.Total())
	return allocation, true
}
