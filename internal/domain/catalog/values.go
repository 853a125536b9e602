package catalog

// ValueFunc maps an item name to its per-unit value.
// ok is false when the value does not apply to that item.
type ValueFunc func(name string) (value float64, ok bool)

// FuelValues reports per-unit power for fuel items
func (c *Catalog) FuelValues() ValueFunc {
	return func(name string) (float64, bool) {
		data, ok := c.items[name]
		if !ok {
			return 0, false
		}
		return data.FuelValue()
	}
}

// FoodValues reports per-unit hunger for food items
func (c *Catalog) FoodValues() ValueFunc {
	return func(name string) (float64, bool) {
		data, ok := c.items[name]
		if !ok {
			return 0, false
		}
		return data.FoodValue()
	}
}

// UnitFuelValues counts every fuel item as one unit of rocket fuel
func (c *Catalog) UnitFuelValues() ValueFunc {
	return func(name string) (float64, bool) {
		data, ok := c.items[name]
		if !ok || data.Category != CategoryFuel {
			return 0, false
		}
		return 1, true
	}
}
