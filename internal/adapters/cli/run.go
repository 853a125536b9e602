package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	"github.com/andrescamacho/outpost-go/internal/application/simulation/types"
)

// fastChunk is how many simulated seconds an open ended fast run advances per step
const fastChunk = 1.0

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		flags    simulationFlags
		realtime bool
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation session",
		Long: `Load a world definition and simulate it.

By default the world advances as fast as possible; --realtime paces ticks
against the wall clock (scaled by --speed). Crafts and the rocket progress
flag are stored in the configured database.

Examples:
  outpost run --duration 60
  outpost run --world configs/world.yaml --realtime --speed 2 --duration 30
  outpost run --prebuilt-rocket --snapshot out/state.json.zst`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			a, ctx, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			if flags.prebuilt {
				if err := a.bootstrapRocket(ctx); err != nil {
					return err
				}
			}

			if realtime {
				err = a.runner.RunRealtime(ctx, cfg.Simulation.Duration, cfg.Simulation.Speed)
			} else {
				err = a.advance(ctx, cfg.Simulation.Duration)
			}
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			// The signal context may be cancelled by now
			finalCtx := context.WithoutCancel(ctx)
			status, err := a.status(finalCtx)
			if err != nil {
				return err
			}
			if err := a.finish(finalCtx, status); err != nil {
				return fmt.Errorf("failed to finish session: %w", err)
			}
			if cfg.Daemon.SnapshotPath != "" {
				if err := a.writeSnapshot(finalCtx, cfg.Daemon.SnapshotPath); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			formatter := NewStatusFormatter(false)
			if quiet {
				fmt.Fprintln(out, formatter.FormatSummary(status))
			} else {
				fmt.Fprint(out, formatter.FormatStatus(status))
				fmt.Fprintf(out, "\nSession %s finished after %d ticks\n", a.sessionID, a.runner.Ticks())
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&realtime, "realtime", false, "Pace ticks against the wall clock")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print a one-line summary instead of the status tree")

	return cmd
}

// advance runs the world through the mediator; duration 0 runs until the game ends
func (a *app) advance(ctx context.Context, duration float64) error {
	if duration > 0 {
		_, err := a.mediator.Send(ctx, &types.AdvanceSimulationCommand{Seconds: duration})
		return err
	}

	for {
		resp, err := a.mediator.Send(ctx, &types.AdvanceSimulationCommand{Seconds: fastChunk})
		if err != nil {
			return err
		}
		result, ok := resp.(*types.AdvanceSimulationResponse)
		if !ok {
			return fmt.Errorf("unexpected response type %T", resp)
		}
		if result.Status != string(simulation.GameStatusRunning) {
			return nil
		}
	}
}
