package manufacturing

import (
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
)

// ItemStack is a named item count used by recipes and info bubbles
type ItemStack struct {
	Name  string
	Count uint
}

// StacksFromNames builds zero-count stacks for display lists
func StacksFromNames(names ...string) []ItemStack {
	stacks := make([]ItemStack, 0, len(names))
	for _, name := range names {
		stacks = append(stacks, ItemStack{Name: name})
	}
	return stacks
}

// Recipe turns input stacks into output stacks after Duration seconds
type Recipe struct {
	Name     string
	Duration float64
	Input    []ItemStack
	Output   []ItemStack
}

// InputNames returns the input item names in order
func (r Recipe) InputNames() []string {
	names := make([]string, 0, len(r.Input))
	for _, stack := range r.Input {
		names = append(names, stack.Name)
	}
	return names
}

// OutputQueue expands the outputs into one entry per unit, e.g. {A:2, B:1} -> A, A, B
func (r Recipe) OutputQueue() []string {
	var queue []string
	for _, stack := range r.Output {
		for i := uint(0); i < stack.Count; i++ {
			queue = append(queue, stack.Name)
		}
	}
	return queue
}

// Validate checks the duration and that every item name is in the catalog
func (r Recipe) Validate(items *catalog.Catalog) error {
	if r.Duration < 0 {
		return fmt.Errorf("recipe %q: duration cannot be negative", r.Name)
	}
	for _, stack := range append(append([]ItemStack{}, r.Input...), r.Output...) {
		if _, err := items.Lookup(stack.Name); err != nil {
			return fmt.Errorf("recipe %q: %w", r.Name, err)
		}
	}
	return nil
}

func (r Recipe) String() string {
	return fmt.Sprintf("Recipe(%s %v -> %v in %.1fs)", r.Name, r.Input, r.Output, r.Duration)
}
