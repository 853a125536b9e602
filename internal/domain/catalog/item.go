package catalog

import "fmt"

// Category classifies an item and decides which value applies to it
type Category string

const (
	CategoryGeneric      Category = "GENERIC"
	CategoryFuel         Category = "FUEL"
	CategoryFood         Category = "FOOD"
	CategoryRocketPart   Category = "ROCKET_PART"
	CategoryBuildingPart Category = "BUILDING_PART"
)

// ParseCategory converts a configured category name, defaulting to generic
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case "", CategoryGeneric:
		return CategoryGeneric, nil
	case CategoryFuel, CategoryFood, CategoryRocketPart, CategoryBuildingPart:
		return Category(s), nil
	default:
		return "", fmt.Errorf("unknown item category %q", s)
	}
}

// ItemData is the immutable catalog record for one item name
type ItemData struct {
	Name     string
	Category Category

	// FuelPower is seconds of factory power per unit (FUEL only)
	FuelPower      float64
	// FoodHunger is seconds of satiety per unit (FOOD only)
	FoodHunger     float64
	// PartBuildIndex orders rocket parts during assembly (ROCKET_PART only)
	PartBuildIndex int
}

// FuelValue returns the per-unit power and whether the item is a fuel
func (d ItemData) FuelValue() (float64, bool) {
	if d.Category != CategoryFuel {
		return 0, false
	}
	return d.FuelPower, true
}

// FoodValue returns the per-unit hunger and whether the item is food
func (d ItemData) FoodValue() (float64, bool) {
	if d.Category != CategoryFood {
		return 0, false
	}
	return d.FoodHunger, true
}

// IsRocketPart reports whether the item goes on a rocket pad
func (d ItemData) IsRocketPart() bool {
	return d.Category == CategoryRocketPart
}

func (d ItemData) String() string {
	return fmt.Sprintf("Item(%s %s)", d.Name, d.Category)
}
