package bdd

import (
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/outpost-go/test/bdd/steps"
	"github.com/andrescamacho/outpost-go/test/helpers"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/adapters"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// NOTE: the catalog steps are shared, so they are registered once here
	catalog := steps.NewCatalogContext()
	steps.InitializeCatalogSteps(sc, catalog)
	steps.InitializeInventoryScenario(sc, catalog)
	steps.InitializeFactoryScenario(sc, catalog)
	steps.InitializeProgressScenario(sc)
}

func TestMain(m *testing.M) {
	// Shared database for the persistence scenarios
	if err := helpers.InitializeSharedTestDB(); err != nil {
		panic("Failed to initialize shared test database: " + err.Error())
	}
	code := m.Run()
	_ = helpers.CloseSharedTestDB()

	os.Exit(code)
}
