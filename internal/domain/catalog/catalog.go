package catalog

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

// Catalog is the registry of every item name known to a world
type Catalog struct {
	items       map[string]ItemData
	names       []string
	rocketParts []ItemData
}

// NewCatalog builds a catalog from item definitions.
// Empty or duplicate names are configuration errors.
func NewCatalog(defs []ItemData) (*Catalog, error) {
	c := &Catalog{
		items: make(map[string]ItemData, len(defs)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, shared.NewConfigurationError("item name cannot be empty")
		}
		if _, exists := c.items[def.Name]; exists {
			return nil, shared.NewDuplicateItemError(def.Name)
		}
		if def.Category == "" {
			def.Category = CategoryGeneric
		}

		c.items[def.Name] = def
		c.names = append(c.names, def.Name)
		if def.IsRocketPart() {
			c.rocketParts = append(c.rocketParts, def)
		}
	}

	sort.SliceStable(c.rocketParts, func(i, j int) bool {
		return c.rocketParts[i].PartBuildIndex < c.rocketParts[j].PartBuildIndex
	})

	return c, nil
}

// Get returns the record for name
func (c *Catalog) Get(name string) (ItemData, bool) {
	data, ok := c.items[name]
	return data, ok
}

// Lookup returns the record for name or an UnknownItemError with a suggestion
func (c *Catalog) Lookup(name string) (ItemData, error) {
	if data, ok := c.items[name]; ok {
		return data, nil
	}
	return ItemData{}, shared.NewUnknownItemError(name, c.Suggest(name))
}

// Has reports whether name is registered
func (c *Catalog) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Names returns item names in definition order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.names)
}

// RocketPartCount returns how many parts a rocket needs
func (c *Catalog) RocketPartCount() int {
	return len(c.rocketParts)
}

// RocketPart returns the i-th part in build order
func (c *Catalog) RocketPart(i int) (ItemData, bool) {
	if i < 0 || i >= len(c.rocketParts) {
		return ItemData{}, false
	}
	return c.rocketParts[i], true
}

// RocketParts returns all parts in build order
func (c *Catalog) RocketParts() []ItemData {
	out := make([]ItemData, len(c.rocketParts))
	copy(out, c.rocketParts)
	return out
}

// Suggest returns the closest registered name, or "" when none is close enough
func (c *Catalog) Suggest(name string) string {
	best := ""
	bestDistance := suggestionLimit(name) + 1
	for _, candidate := range c.names {
		distance := levenshtein.ComputeDistance(name, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best
}

func suggestionLimit(name string) int {
	switch n := len(name); {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
