package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
	"github.com/andrescamacho/outpost-go/internal/domain/inventory"
)

type inventoryContext struct {
	catalog *CatalogContext

	inv     *inventory.Inventory
	intake  *inventory.Intake
	filter  *inventory.ItemFilter
	changes []inventory.ItemChanged

	lastResult uint
	offered    bool
}

func (ic *inventoryContext) reset() {
	ic.inv = nil
	ic.intake = nil
	ic.filter = nil
	ic.changes = nil
	ic.lastResult = 0
	ic.offered = false
}

func (ic *inventoryContext) watch(inv *inventory.Inventory) {
	inv.OnItemChanged.Add(func(c inventory.ItemChanged) {
		ic.changes = append(ic.changes, c)
	})
}

// ============================================================================
// Inventory Steps
// ============================================================================

func (ic *inventoryContext) anInventoryWithCapacity(capacity int) error {
	ic.inv = inventory.NewInventory(uint(capacity))
	ic.watch(ic.inv)
	return nil
}

func (ic *inventoryContext) theInventoryHolds(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		count, err := strconv.Atoi(getCellValue(table, row, "count"))
		if err != nil {
			return err
		}
		ic.inv.Add(getCellValue(table, row, "item"), uint(count))
	}
	ic.changes = nil
	return nil
}

func (ic *inventoryContext) iAdd(count int, name string) error {
	ic.lastResult = ic.inv.Add(name, uint(count))
	return nil
}

func (ic *inventoryContext) iRemove(count int, name string) error {
	ic.lastResult = ic.inv.Remove(name, uint(count))
	return nil
}

func (ic *inventoryContext) theResultingStackShouldBe(expected int) error {
	if ic.lastResult != uint(expected) {
		return fmt.Errorf("expected resulting stack %d, got %d", expected, ic.lastResult)
	}
	return nil
}

func (ic *inventoryContext) theInventoryShouldHoldOf(expected int, name string) error {
	if got := ic.inv.Count(name); got != uint(expected) {
		return fmt.Errorf("expected %d %s, got %d", expected, name, got)
	}
	return nil
}

func (ic *inventoryContext) theInventoryShouldHoldItemsInTotal(expected int) error {
	if got := ic.inv.ItemCount(); got != uint(expected) {
		return fmt.Errorf("expected %d items in total, got %d", expected, got)
	}
	return nil
}

func (ic *inventoryContext) theInventoryShouldBeFull() error {
	if !ic.inv.IsFull() {
		return fmt.Errorf("expected inventory to be full, holds %d/%d", ic.inv.ItemCount(), ic.inv.MaxItemCount())
	}
	return nil
}

func (ic *inventoryContext) theStacksShouldBeInOrder(order string) error {
	var names []string
	for _, stack := range ic.inv.Stacks() {
		names = append(names, stack.Name)
	}
	if got := strings.Join(names, ", "); got != order {
		return fmt.Errorf("expected stacks %q, got %q", order, got)
	}
	return nil
}

func (ic *inventoryContext) changeEventsShouldHaveFired(expected int) error {
	if len(ic.changes) != expected {
		return fmt.Errorf("expected %d change events, got %d: %+v", expected, len(ic.changes), ic.changes)
	}
	return nil
}

func (ic *inventoryContext) theLastChangeShouldMoveFromTo(name string, before, after int) error {
	if len(ic.changes) == 0 {
		return fmt.Errorf("no change events fired")
	}
	last := ic.changes[len(ic.changes)-1]
	if last.Name != name || last.Before != uint(before) || last.After != uint(after) {
		return fmt.Errorf("expected %s %d -> %d, got %s %d -> %d", name, before, after, last.Name, last.Before, last.After)
	}
	return nil
}

// ============================================================================
// Filter Steps
// ============================================================================

func (ic *inventoryContext) aFilterThatAllowsByDefault(mode string) error {
	ic.filter = inventory.NewItemFilter(mode == "allows")
	return nil
}

func (ic *inventoryContext) theFilterRules(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		allowed := getCellValue(table, row, "rule") == "allow"
		isCategory := getCellValue(table, row, "kind") == "category"
		ic.filter.AddOrUpdateRule(getCellValue(table, row, "name"), allowed, isCategory)
	}
	return nil
}

func (ic *inventoryContext) theFilterShouldDecide(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		item, err := ic.lookup(getCellValue(table, row, "item"))
		if err != nil {
			return err
		}
		expected := getCellValue(table, row, "allowed") == "yes"
		if got := ic.filter.IsItemAllowed(item); got != expected {
			return fmt.Errorf("expected %s allowed=%t, got %t", item.Name, expected, got)
		}
	}
	return nil
}

// ============================================================================
// Intake Steps
// ============================================================================

func (ic *inventoryContext) anIntakeWithCapacityThatOnlyAccepts(capacity int, names string) error {
	ic.intake = inventory.NewIntake(uint(capacity), false)
	ic.intake.Filter.AllowOnly(splitNames(names)...)
	ic.inv = ic.intake.Inventory
	ic.watch(ic.inv)
	return nil
}

func (ic *inventoryContext) iOfferOne(name string) error {
	item, err := ic.lookup(name)
	if err != nil {
		return err
	}
	ic.offered = ic.intake.Offer(item)
	return nil
}

func (ic *inventoryContext) theOfferShouldBe(outcome string) error {
	expected := outcome == "accepted"
	if ic.offered != expected {
		return fmt.Errorf("expected offer to be %s", outcome)
	}
	return nil
}

func (ic *inventoryContext) lookup(name string) (catalog.ItemData, error) {
	return ic.catalog.Items().Lookup(name)
}

func splitNames(list string) []string {
	var names []string
	for _, part := range strings.Split(list, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// InitializeInventoryScenario registers inventory, filter and intake steps
func InitializeInventoryScenario(sc *godog.ScenarioContext, cc *CatalogContext) {
	ic := &inventoryContext{catalog: cc}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		ic.reset()
		return ctx, nil
	})

	sc.Step(`^an inventory with capacity (\d+)$`, ic.anInventoryWithCapacity)
	sc.Step(`^the inventory holds:$`, ic.theInventoryHolds)
	sc.Step(`^I add (\d+) "([^"]*)"$`, ic.iAdd)
	sc.Step(`^I remove (\d+) "([^"]*)"$`, ic.iRemove)
	sc.Step(`^the resulting stack should be (\d+)$`, ic.theResultingStackShouldBe)
	sc.Step(`^the inventory should hold (\d+) "([^"]*)"$`, ic.theInventoryShouldHoldOf)
	sc.Step(`^the inventory should hold (\d+) items in total$`, ic.theInventoryShouldHoldItemsInTotal)
	sc.Step(`^the inventory should be full$`, ic.theInventoryShouldBeFull)
	sc.Step(`^the stacks should be "([^"]*)"$`, ic.theStacksShouldBeInOrder)
	sc.Step(`^(\d+) change events? should have fired$`, ic.changeEventsShouldHaveFired)
	sc.Step(`^the last change should move "([^"]*)" from (\d+) to (\d+)$`, ic.theLastChangeShouldMoveFromTo)

	sc.Step(`^a filter that (allows|denies) by default$`, ic.aFilterThatAllowsByDefault)
	sc.Step(`^the filter rules:$`, ic.theFilterRules)
	sc.Step(`^the filter should decide:$`, ic.theFilterShouldDecide)

	sc.Step(`^an intake with capacity (\d+) that only accepts "([^"]*)"$`, ic.anIntakeWithCapacityThatOnlyAccepts)
	sc.Step(`^I offer one "([^"]*)"$`, ic.iOfferOne)
	sc.Step(`^the offer should be (accepted|rejected)$`, ic.theOfferShouldBe)
}
