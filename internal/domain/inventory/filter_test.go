package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/inventory"
)

func TestItemFilter_DefaultWithoutRules(t *testing.T) {
	assert.True(t, inventory.NewItemFilter(true).IsAllowed("Wood", catalog.CategoryFuel))
	assert.False(t, inventory.NewItemFilter(false).IsAllowed("Wood", catalog.CategoryFuel))
}

func TestItemFilter_NameRuleOverridesDefault(t *testing.T) {
	filter := inventory.NewItemFilter(true)

	appended := filter.AddOrUpdateRule("Wood", false, false)

	assert.True(t, appended)
	assert.False(t, filter.IsAllowed("Wood", catalog.CategoryFuel))
	assert.True(t, filter.IsAllowed("Iron", catalog.CategoryGeneric))
}

func TestItemFilter_FirstMatchWins(t *testing.T) {
	filter := inventory.NewItemFilter(false)
	filter.AddOrUpdateRule("Uranium", false, false)
	filter.AddOrUpdateRule(string(catalog.CategoryFuel), true, true)

	assert.False(t, filter.IsAllowed("Uranium", catalog.CategoryFuel))
	assert.True(t, filter.IsAllowed("Wood", catalog.CategoryFuel))
	assert.False(t, filter.IsAllowed("Berry", catalog.CategoryFood))
}

func TestItemFilter_UpdateInPlace(t *testing.T) {
	filter := inventory.NewItemFilter(false)
	filter.AddOrUpdateRule("Wood", true, false)
	filter.AddOrUpdateRule("Gaz", true, false)

	appended := filter.AddOrUpdateRule("Wood", false, false)

	assert.False(t, appended)
	assert.Equal(t, []inventory.Rule{
		{Name: "Wood", Allowed: false},
		{Name: "Gaz", Allowed: true},
	}, filter.Rules())
}

func TestItemFilter_UpdateInPlaceSwitchesRuleKind(t *testing.T) {
	// Arrange
	filter := inventory.NewItemFilter(true)
	filter.AddOrUpdateRule("FUEL", true, false)

	// Act
	appended := filter.AddOrUpdateRule("FUEL", false, true)

	// Assert
	assert.False(t, appended)
	assert.Equal(t, []inventory.Rule{{Name: "FUEL", Allowed: false, IsCategory: true}}, filter.Rules())
	assert.False(t, filter.IsAllowed("Wood", catalog.CategoryFuel))
	assert.True(t, filter.RemoveRule("FUEL"))
	assert.Empty(t, filter.Rules())
}

func TestItemFilter_RemoveAndAllowOnly(t *testing.T) {
	filter := inventory.NewItemFilter(true)
	filter.AddOrUpdateRule("Wood", false, false)

	assert.True(t, filter.RemoveRule("Wood"))
	assert.False(t, filter.RemoveRule("Wood"))

	filter.AllowOnly("Iron", "Coal")
	assert.False(t, filter.AllowedByDefault)
	assert.True(t, filter.IsAllowed("Coal", catalog.CategoryGeneric))
	assert.False(t, filter.IsAllowed("Wood", catalog.CategoryFuel))

	filter.DenyAll()
	assert.Empty(t, filter.Rules())
	assert.False(t, filter.IsAllowed("Coal", catalog.CategoryGeneric))
}

func TestIntake_OfferChecksFilterAndCapacity(t *testing.T) {
	// Arrange
	intake := inventory.NewIntake(1, false)
	intake.Filter.AddOrUpdateRule("Engine", true, false)
	engine := catalog.ItemData{Name: "Engine", Category: catalog.CategoryRocketPart}
	hull := catalog.ItemData{Name: "Hull", Category: catalog.CategoryRocketPart}

	// Act & Assert
	assert.False(t, intake.Offer(hull))
	assert.True(t, intake.Offer(engine))
	assert.False(t, intake.Offer(engine))
	assert.Equal(t, uint(1), intake.Inventory.Count("Engine"))
}
