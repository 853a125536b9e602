package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/outpost-go/internal/adapters/logging"
	"github.com/andrescamacho/outpost-go/internal/adapters/metrics"
	"github.com/andrescamacho/outpost-go/internal/adapters/persistence"
	"github.com/andrescamacho/outpost-go/internal/adapters/snapshot"
	"github.com/andrescamacho/outpost-go/internal/adapters/world"
	appLogging "github.com/andrescamacho/outpost-go/internal/application/logging"
	"github.com/andrescamacho/outpost-go/internal/application/mediator"
	"github.com/andrescamacho/outpost-go/internal/application/progress"
	"github.com/andrescamacho/outpost-go/internal/application/setup"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	"github.com/andrescamacho/outpost-go/internal/application/simulation/queries"
	domainProgress "github.com/andrescamacho/outpost-go/internal/domain/progress"
	"github.com/andrescamacho/outpost-go/internal/infrastructure/config"
	"github.com/andrescamacho/outpost-go/internal/infrastructure/database"
	"github.com/andrescamacho/outpost-go/pkg/utils"
)

// app bundles one simulation session and everything wired around it
type app struct {
	cfg       *config.Config
	logger    *logging.SlogLogger
	db        *gorm.DB
	sessionID string

	spawner  *world.GroundSpawner
	runner   *simulation.Runner
	mediator mediator.Mediator

	progressRepo *persistence.GormProgressRepository
	sessionRepo  *persistence.GormSessionRepository

	worldMetrics *metrics.WorldMetricsCollector
	events       []simulation.Event
}

// loadSettings loads the config file, then user preferences
func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return cfg, nil
	}
	if prefs, err := handler.Load(); err == nil {
		prefs.Apply(cfg)
	}
	return cfg, nil
}

// newLogger builds the slog logger; --verbose forces debug
func newLogger(cfg *config.Config) (*logging.SlogLogger, error) {
	logCfg := cfg.Logging
	if verbose {
		logCfg.Level = "debug"
	}
	return logging.NewSlogLogger(logCfg)
}

// newApp builds the world, connects the database and registers handlers.
// The returned context carries the session logger.
func newApp(ctx context.Context, cfg *config.Config) (*app, context.Context, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, ctx, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{
		cfg:       cfg,
		sessionID: utils.GenerateSessionID(),
	}
	a.logger = logger.With("session", a.sessionID)
	ctx = appLogging.WithLogger(ctx, a.logger)

	if err := a.buildWorld(ctx); err != nil {
		a.Close()
		return nil, ctx, err
	}
	if err := a.connect(ctx); err != nil {
		a.Close()
		return nil, ctx, err
	}
	if err := a.registerHandlers(); err != nil {
		a.Close()
		return nil, ctx, err
	}
	return a, ctx, nil
}

func (a *app) buildWorld(ctx context.Context) error {
	def, err := config.LoadWorldDefinition(a.cfg.Simulation.WorldFile)
	if err != nil {
		return err
	}

	items, err := setup.BuildCatalog(def)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	a.spawner, err = world.NewGroundSpawner(items)
	if err != nil {
		return err
	}

	w, script, err := setup.BuildWorld(def, items, a.spawner, newRandom(a.cfg.Simulation.Seed))
	if err != nil {
		return fmt.Errorf("failed to build world: %w", err)
	}

	w.OnEvent.Add(func(e simulation.Event) {
		a.events = append(a.events, e)
		metrics.RecordEvent(e)
		a.logger.Log("INFO", "World event", map[string]interface{}{
			"time":   e.Time,
			"kind":   string(e.Kind),
			"source": e.Source,
			"item":   e.Item,
			"count":  e.Count,
		})
	})

	a.runner, err = simulation.NewRunner(w, simulation.RunnerConfig{
		TickInterval:  a.cfg.Simulation.TickInterval,
		FixedInterval: a.cfg.Simulation.FixedInterval,
	}, script)
	if err != nil {
		return err
	}

	a.logger.Log("INFO", "World loaded", map[string]interface{}{
		"world_file":    a.cfg.Simulation.WorldFile,
		"items":         items.Len(),
		"factories":     len(w.Factories()),
		"script_events": len(script),
	})
	return nil
}

func (a *app) connect(ctx context.Context) error {
	db, err := database.Open(&a.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.db = db

	a.progressRepo = persistence.NewGormProgressRepository(db)
	a.sessionRepo = persistence.NewGormSessionRepository(db)
	craftLogRepo := persistence.NewGormCraftLogRepository(db)

	if err := a.sessionRepo.Start(ctx, domainProgress.Session{
		ID:        a.sessionID,
		WorldFile: a.cfg.Simulation.WorldFile,
		StartedAt: time.Now(),
		Status:    string(simulation.GameStatusRunning),
	}); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	recorder := progress.NewRecorder(a.sessionID, a.progressRepo, craftLogRepo, nil)
	return a.runner.Do(func(w *simulation.World) error {
		recorder.Attach(ctx, w)
		return nil
	})
}

func (a *app) registerHandlers() error {
	a.mediator = mediator.NewMediator()

	if a.cfg.Metrics.Enabled {
		metrics.InitRegistry()

		commandMetrics := metrics.NewCommandMetricsCollector()
		if err := commandMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register command metrics: %w", err)
		}
		a.mediator.Use(metrics.PrometheusMiddleware(commandMetrics))

		a.worldMetrics = metrics.NewWorldMetricsCollector(a.runner.Snapshot, a.spawner.GroundCounts, a.cfg.Daemon.StatusInterval)
		if err := a.worldMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register world metrics: %w", err)
		}
		metrics.SetGlobalEventRecorder(a.worldMetrics)
	}

	return setup.NewHandlerRegistry(a.runner).RegisterSimulationHandlers(a.mediator)
}

// bootstrapRocket prepares a built, fueled rocket; a missing progress flag only warns
func (a *app) bootstrapRocket(ctx context.Context) error {
	logger := appLogging.LoggerFromContext(ctx)

	built, err := a.progressRepo.RocketBuilt(ctx)
	if err != nil {
		return fmt.Errorf("failed to read rocket progress: %w", err)
	}
	if !built {
		logger.Log("WARNING", "No rocket was built in an earlier session; bootstrapping anyway", nil)
	}

	if err := a.runner.Do(func(w *simulation.World) error { return w.BootstrapRocket() }); err != nil {
		return fmt.Errorf("failed to bootstrap rocket: %w", err)
	}
	logger.Log("INFO", "Rocket bootstrapped", nil)
	return nil
}

// status queries the world through the mediator
func (a *app) status(ctx context.Context) (simulation.WorldStatus, error) {
	resp, err := a.mediator.Send(ctx, &queries.GetWorldStatusQuery{})
	if err != nil {
		return simulation.WorldStatus{}, err
	}
	result, ok := resp.(*queries.GetWorldStatusResponse)
	if !ok {
		return simulation.WorldStatus{}, fmt.Errorf("unexpected response type %T", resp)
	}
	return result.Status, nil
}

// finish closes the session row with the final world status
func (a *app) finish(ctx context.Context, status simulation.WorldStatus) error {
	return a.sessionRepo.Finish(ctx, a.sessionID, status.Status, status.Elapsed, time.Now())
}

// writeSnapshot exports the current state to path
func (a *app) writeSnapshot(ctx context.Context, path string) error {
	status, err := a.status(ctx)
	if err != nil {
		return err
	}

	var events []simulation.Event
	_ = a.runner.Do(func(*simulation.World) error {
		events = append(events, a.events...)
		return nil
	})

	snap := snapshot.Snapshot{
		Header: snapshot.Header{
			SessionID: a.sessionID,
			Elapsed:   status.Elapsed,
			WrittenAt: time.Now().UTC(),
		},
		World:  status,
		Ground: a.spawner.Items(),
		Events: events,
	}
	if err := snapshot.WriteFile(path, snap); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	appLogging.LoggerFromContext(ctx).Log("INFO", "Snapshot written", map[string]interface{}{
		"path":   path,
		"events": len(events),
	})
	return nil
}

// Close releases the database and log file
func (a *app) Close() {
	if a.worldMetrics != nil {
		a.worldMetrics.Stop()
	}
	metrics.SetGlobalEventRecorder(nil)
	if a.db != nil {
		_ = database.Close(a.db)
	}
	if a.logger != nil {
		_ = a.logger.Close()
	}
}

// newRandom seeds loot rolls; seed 0 picks one at random
func newRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
