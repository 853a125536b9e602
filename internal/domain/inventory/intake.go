package inventory

import "github.com/andrescamacho/outpost-go/internal/domain/catalog"

// Intake is a physical drop zone: a filter in front of an inventory
type Intake struct {
	Inventory *Inventory
	Filter    *ItemFilter
}

// NewIntake creates an intake with its own inventory and filter
func NewIntake(maxItemCount uint, allowedByDefault bool) *Intake {
	return &Intake{
		Inventory: NewInventory(maxItemCount),
		Filter:    NewItemFilter(allowedByDefault),
	}
}

// Accepts reports whether one unit of item would be taken
func (in *Intake) Accepts(item catalog.ItemData) bool {
	return in.Filter.IsItemAllowed(item) && !in.Inventory.IsFull()
}

// Offer takes one unit of item when the filter allows it and there is room
func (in *Intake) Offer(item catalog.ItemData) bool {
	if !in.Accepts(item) {
		return false
	}
	in.Inventory.Add(item.Name, 1)
	return true
}
