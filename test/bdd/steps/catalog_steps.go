package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/andrescamacho/outpost-go/internal/domain/catalog"
)

// CatalogContext holds the item catalog shared by the domain scenarios
type CatalogContext struct {
	items *catalog.Catalog
	err   error
}

// NewCatalogContext creates an empty catalog context
func NewCatalogContext() *CatalogContext {
	return &CatalogContext{}
}

func (cc *CatalogContext) reset() {
	cc.items = nil
	cc.err = nil
}

// Items returns the catalog, building an empty one if no step defined items
func (cc *CatalogContext) Items() *catalog.Catalog {
	if cc.items == nil {
		cc.items, _ = catalog.NewCatalog(nil)
	}
	return cc.items
}

func (cc *CatalogContext) theItemCatalog(table *godog.Table) error {
	defs := make([]catalog.ItemData, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		category, err := catalog.ParseCategory(getCellValue(table, row, "category"))
		if err != nil {
			return err
		}
		value, err := parseOptionalFloat(getCellValue(table, row, "value"))
		if err != nil {
			return err
		}

		item := catalog.ItemData{Name: getCellValue(table, row, "name"), Category: category}
		switch category {
		case catalog.CategoryFuel:
			item.FuelPower = value
		case catalog.CategoryFood:
			item.FoodHunger = value
		case catalog.CategoryRocketPart:
			item.PartBuildIndex = int(value)
		}
		defs = append(defs, item)
	}

	cc.items, cc.err = catalog.NewCatalog(defs)
	return cc.err
}

func (cc *CatalogContext) iBuildACatalogWith(table *godog.Table) error {
	defs := make([]catalog.ItemData, 0, len(table.Rows))
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		defs = append(defs, catalog.ItemData{Name: getCellValue(table, row, "name")})
	}
	cc.items, cc.err = catalog.NewCatalog(defs)
	return nil
}

func (cc *CatalogContext) catalogCreationShouldFailMentioning(fragment string) error {
	if cc.err == nil {
		return fmt.Errorf("expected catalog creation to fail")
	}
	if !strings.Contains(cc.err.Error(), fragment) {
		return fmt.Errorf("expected error mentioning %q, got %q", fragment, cc.err.Error())
	}
	return nil
}

func (cc *CatalogContext) theSuggestionForShouldBe(name, expected string) error {
	if got := cc.Items().Suggest(name); got != expected {
		return fmt.Errorf("expected suggestion %q for %q, got %q", expected, name, got)
	}
	return nil
}

// InitializeCatalogSteps registers catalog step definitions
func InitializeCatalogSteps(sc *godog.ScenarioContext, cc *CatalogContext) {
	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	sc.Step(`^the item catalog:$`, cc.theItemCatalog)
	sc.Step(`^I build a catalog with:$`, cc.iBuildACatalogWith)
	sc.Step(`^catalog creation should fail mentioning "([^"]*)"$`, cc.catalogCreationShouldFailMentioning)
	sc.Step(`^the suggestion for "([^"]*)" should be "([^"]*)"$`, cc.theSuggestionForShouldBe)
}

// ============================================================================
// Helper Functions
// ============================================================================

// getCellValue gets a cell value from a table row by column name
// It uses the first row (table.Rows[0]) as the header to find the column index
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}
	return ""
}

func parseOptionalFloat(s string) (float64, error) {
	if s == "" || s == "-" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
