package inventory

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// DefaultMaxItemCount is the capacity of an inventory built without one
const DefaultMaxItemCount uint = 9999

// Stack is one named entry held by an inventory
type Stack struct {
	Name  string
	Count uint
}

// ItemChanged describes a single stack mutation
type ItemChanged struct {
	Name   string
	Before uint
	After  uint
}

// Inventory holds counted stacks of items up to a total capacity.
//
// Invariants:
// - itemCount equals the sum of all stacks
// - no stack is stored with a zero count
// - Add never pushes itemCount above maxItemCount
type Inventory struct {
	stacks       map[string]uint
	order        []string
	itemCount    uint
	maxItemCount uint

	OnItemChanged shared.Listeners[ItemChanged]
	OnChanged     shared.Listeners[struct{}]
}

// NewInventory creates an empty inventory with the given capacity
func NewInventory(maxItemCount uint) *Inventory {
	return &Inventory{
		stacks:       make(map[string]uint),
		maxItemCount: maxItemCount,
	}
}

// ItemCount returns the total number of units held
func (inv *Inventory) ItemCount() uint {
	return inv.itemCount
}

// MaxItemCount returns the capacity
func (inv *Inventory) MaxItemCount() uint {
	return inv.maxItemCount
}

// SetMaxItemCount changes the capacity. Held items are never evicted.
func (inv *Inventory) SetMaxItemCount(max uint) {
	inv.maxItemCount = max
}

// IsFull reports whether no more units can be added
func (inv *Inventory) IsFull() bool {
	return inv.itemCount >= inv.maxItemCount
}

// IsEmpty reports whether nothing is held
func (inv *Inventory) IsEmpty() bool {
	return inv.itemCount == 0
}

// Count returns the stack size for name, 0 when absent
func (inv *Inventory) Count(name string) uint {
	return inv.stacks[name]
}

// Has reports whether at least count units of name are held
func (inv *Inventory) Has(name string, count uint) bool {
	return inv.stacks[name] >= count
}

// Stacks returns a snapshot of the stacks in insertion order
func (inv *Inventory) Stacks() []Stack {
	out := make([]Stack, 0, len(inv.order))
	for _, name := range inv.order {
		out = append(out, Stack{Name: name, Count: inv.stacks[name]})
	}
	return out
}

// Add stores up to count units of name, clamped to the free capacity.
// A zero count still notifies unless the inventory is full.
// Returns the resulting stack size.
func (inv *Inventory) Add(name string, count uint) uint {
	had := inv.stacks[name]
	if inv.IsFull() {
		return had
	}
	if count == 0 {
		inv.notify(name, had, had)
		return had
	}

	if free := inv.maxItemCount - inv.itemCount; count > free {
		count = free
	}

	if had == 0 {
		inv.order = append(inv.order, name)
	}
	have := had + count
	inv.stacks[name] = have
	inv.itemCount += count

	inv.notify(name, had, have)
	return have
}

// Remove takes up to count units of name and returns the resulting stack size.
// Removing at least the whole stack deletes the entry.
func (inv *Inventory) Remove(name string, count uint) uint {
	had, ok := inv.stacks[name]
	if !ok {
		return 0
	}
	if count == 0 {
		inv.notify(name, had, had)
		return had
	}

	if count >= had {
		delete(inv.stacks, name)
		inv.removeFromOrder(name)
		inv.itemCount -= had
		inv.notify(name, had, 0)
		return 0
	}

	have := had - count
	inv.stacks[name] = have
	inv.itemCount -= count
	inv.notify(name, had, have)
	return have
}

// RemoveAll deletes the whole stack of name and returns how many units it held
func (inv *Inventory) RemoveAll(name string) uint {
	had := inv.stacks[name]
	inv.Remove(name, had)
	return had
}

// Clear removes every stack, firing one event per stack
func (inv *Inventory) Clear() {
	for _, stack := range inv.Stacks() {
		inv.Remove(stack.Name, stack.Count)
	}
}

func (inv *Inventory) notify(name string, before, after uint) {
	inv.OnItemChanged.Notify(ItemChanged{Name: name, Before: before, After: after})
	inv.OnChanged.Notify(struct{}{})
}

func (inv *Inventory) removeFromOrder(name string) {
	for i, n := range inv.order {
		if n == name {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			return
		}
	}
}

func (inv *Inventory) String() string {
	parts := make([]string, 0, len(inv.order))
	for _, name := range inv.order {
		parts = append(parts, fmt.Sprintf("%s:%d", name, inv.stacks[name]))
	}
	return fmt.Sprintf("Inventory(%d/%d)[%s]", inv.itemCount, inv.maxItemCount, strings.Join(parts, " "))
}
