package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/andrescamacho/outpost-go/internal/application/logging"
)

// stepEpsilon absorbs float drift when splitting time into steps
const stepEpsilon = 1e-9

// RunnerConfig holds the step sizes in simulated seconds
type RunnerConfig struct {
	TickInterval  float64
	FixedInterval float64
}

// Runner owns the simulation loop: logic ticks of TickInterval, fixed ticks of
// FixedInterval driven from an accumulator, and the player script.
// Every access to the world goes through the runner's lock.
type Runner struct {
	mu     sync.Mutex
	world  *World
	config RunnerConfig

	script           []ScriptEvent
	nextEvent        int
	fixedAccumulator float64
	ticks            int
}

// NewRunner creates a runner for world
func NewRunner(world *World, config RunnerConfig, script []ScriptEvent) (*Runner, error) {
	if world == nil {
		return nil, fmt.Errorf("runner: world is required")
	}
	if config.TickInterval <= 0 || config.FixedInterval <= 0 {
		return nil, fmt.Errorf("runner: tick intervals must be positive")
	}
	return &Runner{
		world:  world,
		config: config,
		script: SortScript(script),
	}, nil
}

// Do runs fn against the world between ticks
func (r *Runner) Do(fn func(w *World) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.world)
}

// Snapshot returns a settled view of the world
func (r *Runner) Snapshot() WorldStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.world.Snapshot()
}

// Ticks returns how many logic ticks ran
func (r *Runner) Ticks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks
}

// PendingEvents returns how many scripted events have not been applied yet
func (r *Runner) PendingEvents() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.script) - r.nextEvent
}

// Advance runs the simulation for seconds of simulated time.
// It stops early when the world is lost or ctx is cancelled.
func (r *Runner) Advance(ctx context.Context, seconds float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	remaining := seconds
	for remaining > stepEpsilon {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.world.Status() == GameStatusLost {
			return nil
		}

		dt := r.config.TickInterval
		if remaining < dt {
			dt = remaining
		}
		if err := r.step(ctx, dt); err != nil {
			return err
		}
		remaining -= dt
	}
	return nil
}

func (r *Runner) step(ctx context.Context, dt float64) error {
	if err := r.applyDueEvents(ctx); err != nil {
		return err
	}

	if err := r.world.Tick(dt); err != nil {
		return fmt.Errorf("tick at %.3fs: %w", r.world.Elapsed(), err)
	}
	r.ticks++

	r.fixedAccumulator += dt
	for r.fixedAccumulator+stepEpsilon >= r.config.FixedInterval {
		if err := r.world.FixedTick(r.config.FixedInterval); err != nil {
			return fmt.Errorf("fixed tick at %.3fs: %w", r.world.Elapsed(), err)
		}
		r.fixedAccumulator -= r.config.FixedInterval
	}
	return nil
}

func (r *Runner) applyDueEvents(ctx context.Context) error {
	for r.nextEvent < len(r.script) && r.script[r.nextEvent].At <= r.world.Elapsed()+stepEpsilon {
		event := r.script[r.nextEvent]
		r.nextEvent++
		if err := r.world.Apply(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

// RunRealtime paces logic ticks against the wall clock, scaled by speed, until
// seconds of simulated time passed (forever when seconds <= 0) or ctx is done.
func (r *Runner) RunRealtime(ctx context.Context, seconds, speed float64) error {
	if speed <= 0 {
		speed = 1
	}

	interval := time.Duration(r.config.TickInterval / speed * float64(time.Second))
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	logger := logging.LoggerFromContext(ctx)

	logger.Log("INFO", "Realtime simulation started", map[string]interface{}{
		"tick_interval": r.config.TickInterval,
		"speed":         speed,
		"duration":      seconds,
	})

	var simulated float64
	for seconds <= 0 || simulated < seconds-stepEpsilon {
		if err := limiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			return err
		}

		dt := r.config.TickInterval
		if seconds > 0 && seconds-simulated < dt {
			dt = seconds - simulated
		}

		lost, err := r.realtimeStep(ctx, dt)
		if err != nil {
			return err
		}
		if lost {
			logger.Log("INFO", "Realtime simulation stopped: game lost", nil)
			return nil
		}
		simulated += dt
	}
	return nil
}

func (r *Runner) realtimeStep(ctx context.Context, dt float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.world.Status() == GameStatusLost {
		return true, nil
	}
	return false, r.step(ctx, dt)
}
