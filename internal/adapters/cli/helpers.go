package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/outpost-go/internal/infrastructure/config"
)

// simulationFlags holds flags shared by run and serve
type simulationFlags struct {
	world    string
	duration float64
	speed    float64
	prebuilt bool
	snapshot string
}

func (f *simulationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.world, "world", "", "World definition file (overrides config and user preference)")
	cmd.Flags().Float64Var(&f.duration, "duration", 0, "Simulated seconds to run (0 = until the game ends or is interrupted)")
	cmd.Flags().Float64Var(&f.speed, "speed", 0, "Realtime speed multiplier")
	cmd.Flags().BoolVar(&f.prebuilt, "prebuilt-rocket", false, "Start with the rocket already built and fueled")
	cmd.Flags().StringVar(&f.snapshot, "snapshot", "", "Write a zstd compressed state snapshot to this path when done")
}

// apply overrides configuration with flags the user actually set
func (f *simulationFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("world") {
		cfg.Simulation.WorldFile = f.world
	}
	if cmd.Flags().Changed("duration") {
		if f.duration < 0 {
			return errors.New("--duration must not be negative")
		}
		cfg.Simulation.Duration = f.duration
	}
	if cmd.Flags().Changed("speed") {
		if f.speed <= 0 {
			return errors.New("--speed must be positive")
		}
		cfg.Simulation.Speed = f.speed
	}
	if cmd.Flags().Changed("snapshot") {
		cfg.Daemon.SnapshotPath = f.snapshot
	}
	return nil
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
