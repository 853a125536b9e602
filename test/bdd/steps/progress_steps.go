package steps

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/outpost-go/internal/adapters/persistence"
	"github.com/andrescamacho/outpost-go/internal/application/progress"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	domainProgress "github.com/andrescamacho/outpost-go/internal/domain/progress"
	"github.com/andrescamacho/outpost-go/internal/domain/shared"
	"github.com/andrescamacho/outpost-go/test/helpers"
)

type progressContext struct {
	ctx   context.Context
	clock *shared.MockClock

	progressRepo *persistence.GormProgressRepository
	sessionRepo  *persistence.GormSessionRepository
	craftLogRepo *persistence.GormCraftLogRepository
	recorder     *progress.Recorder
	sessionID    string
}

func (pc *progressContext) reset() {
	pc.ctx = context.Background()
	pc.clock = shared.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	pc.progressRepo = nil
	pc.sessionRepo = nil
	pc.craftLogRepo = nil
	pc.recorder = nil
	pc.sessionID = ""
}

func (pc *progressContext) aCleanProgressStore() error {
	if err := helpers.TruncateAllTables(); err != nil {
		return err
	}
	pc.progressRepo = persistence.NewGormProgressRepository(helpers.SharedTestDB)
	pc.sessionRepo = persistence.NewGormSessionRepository(helpers.SharedTestDB)
	pc.craftLogRepo = persistence.NewGormCraftLogRepository(helpers.SharedTestDB)
	return nil
}

func (pc *progressContext) sessionStarts(id string) error {
	pc.sessionID = id
	pc.recorder = progress.NewRecorder(id, pc.progressRepo, pc.craftLogRepo, pc.clock)
	pc.clock.Advance(time.Minute)
	return pc.sessionRepo.Start(pc.ctx, domainProgress.Session{
		ID:        id,
		WorldFile: "configs/world.yaml",
		StartedAt: pc.clock.Now(),
		Status:    string(simulation.GameStatusRunning),
	})
}

func (pc *progressContext) theWorldReportsCrafts(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		at, err := strconv.ParseFloat(getCellValue(table, row, "time"), 64)
		if err != nil {
			return fmt.Errorf("invalid time: %w", err)
		}
		pc.recorder.Handle(pc.ctx, simulation.Event{
			Time:   at,
			Kind:   simulation.EventRecipeCrafted,
			Source: getCellValue(table, row, "factory"),
			Item:   getCellValue(table, row, "recipe"),
		})
	}
	return nil
}

func (pc *progressContext) theWorldReportsTheRocketBuilt() error {
	pc.recorder.Handle(pc.ctx, simulation.Event{Kind: simulation.EventRocketBuilt, Source: "pad"})
	return nil
}

func (pc *progressContext) theSessionFinishesAfterSeconds(status string, elapsed float64) error {
	return pc.sessionRepo.Finish(pc.ctx, pc.sessionID, status, elapsed, pc.clock.Now())
}

func (pc *progressContext) theProgressIsReset() error {
	return pc.progressRepo.Reset(pc.ctx)
}

func (pc *progressContext) theRocketShouldBeMarked(outcome string) error {
	built, err := pc.progressRepo.RocketBuilt(pc.ctx)
	if err != nil {
		return err
	}
	expected := outcome == "built"
	if built != expected {
		return fmt.Errorf("expected rocket built=%t, got %t", expected, built)
	}
	return nil
}

func (pc *progressContext) theCraftCountsShouldBe(table *godog.Table) error {
	counts, err := pc.craftLogRepo.CountByRecipe(pc.ctx)
	if err != nil {
		return err
	}

	expected := 0
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		expected++
		recipe := getCellValue(table, row, "recipe")
		want, err := strconv.ParseInt(getCellValue(table, row, "count"), 10, 64)
		if err != nil {
			return err
		}
		if counts[recipe] != want {
			return fmt.Errorf("expected %d crafts of %s, got %d", want, recipe, counts[recipe])
		}
	}
	if len(counts) != expected {
		return fmt.Errorf("expected %d recipes in the craft log, got %d", expected, len(counts))
	}
	return nil
}

func (pc *progressContext) sessionShouldHaveCrafts(id string, expected int) error {
	records, err := pc.craftLogRepo.ListBySession(pc.ctx, id)
	if err != nil {
		return err
	}
	if len(records) != expected {
		return fmt.Errorf("expected %d crafts for session %s, got %d", expected, id, len(records))
	}
	return nil
}

func (pc *progressContext) theRecentSessionsShouldBe(table *godog.Table) error {
	sessions, err := pc.sessionRepo.ListRecent(pc.ctx, 0)
	if err != nil {
		return err
	}
	if len(sessions) != len(table.Rows)-1 {
		return fmt.Errorf("expected %d sessions, got %d", len(table.Rows)-1, len(sessions))
	}

	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		got := sessions[i-1]
		if id := getCellValue(table, row, "id"); got.ID != id {
			return fmt.Errorf("row %d: expected session %s, got %s", i, id, got.ID)
		}
		if status := getCellValue(table, row, "status"); got.Status != status {
			return fmt.Errorf("session %s: expected status %s, got %s", got.ID, status, got.Status)
		}
	}
	return nil
}

// InitializeProgressScenario registers the persistent progress steps
func InitializeProgressScenario(sc *godog.ScenarioContext) {
	pc := &progressContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		pc.reset()
		return ctx, nil
	})

	sc.Step(`^a clean progress store$`, pc.aCleanProgressStore)
	sc.Step(`^session "([^"]*)" starts$`, pc.sessionStarts)
	sc.Step(`^the world reports crafts:$`, pc.theWorldReportsCrafts)
	sc.Step(`^the world reports the rocket built$`, pc.theWorldReportsTheRocketBuilt)
	sc.Step(`^the session finishes (RUNNING|LAUNCHED|LOST) after (\d+(?:\.\d+)?) seconds$`, pc.theSessionFinishesAfterSeconds)
	sc.Step(`^the progress is reset$`, pc.theProgressIsReset)
	sc.Step(`^the rocket should be marked (built|not built)$`, pc.theRocketShouldBeMarked)
	sc.Step(`^the craft counts should be:$`, pc.theCraftCountsShouldBe)
	sc.Step(`^session "([^"]*)" should have (\d+) crafts?$`, pc.sessionShouldHaveCrafts)
	sc.Step(`^the recent sessions should be:$`, pc.theRecentSessionsShouldBe)
}
