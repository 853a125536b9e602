package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/outpost-go/internal/adapters/metrics"
	appLogging "github.com/andrescamacho/outpost-go/internal/application/logging"
	"github.com/andrescamacho/outpost-go/internal/infrastructure/pidfile"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var (
		flags         simulationFlags
		enableMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the world in realtime as a long lived process",
		Long: `Run the world against the wall clock until interrupted or the game ends.

A PID file keeps a single server per configuration. When metrics are enabled
the world is exported on the Prometheus endpoint; a status line is logged
every daemon.status_interval and a snapshot is written on shutdown when
daemon.snapshot_path (or --snapshot) is set.

Examples:
  outpost serve
  outpost serve --speed 4 --metrics
  outpost serve --duration 600 --snapshot /var/lib/outpost/state.json.zst`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}
			if enableMetrics {
				cfg.Metrics.Enabled = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Acquiring PID file lock: %s\n", cfg.Daemon.PIDFile)
			pf := pidfile.New(cfg.Daemon.PIDFile)
			if err := pf.Acquire(); err != nil {
				return fmt.Errorf("failed to acquire PID file lock: %w", err)
			}
			defer func() {
				if err := pf.Release(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
				}
			}()

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			a, ctx, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			logger := appLogging.LoggerFromContext(ctx)

			if flags.prebuilt {
				if err := a.bootstrapRocket(ctx); err != nil {
					return err
				}
			}

			var server *http.Server
			if a.worldMetrics != nil {
				server = newMetricsServer(cfg.Metrics.Address(), cfg.Metrics.Path)
				go func() {
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Log("ERROR", "Metrics server failed", map[string]interface{}{"error": err.Error()})
					}
				}()
				a.worldMetrics.Start(ctx)
				logger.Log("INFO", "Metrics server listening", map[string]interface{}{
					"addr": server.Addr,
					"path": cfg.Metrics.Path,
				})
			}

			var wg sync.WaitGroup
			loopCtx, cancelLoop := context.WithCancel(ctx)
			wg.Add(1)
			go func() {
				defer wg.Done()
				a.logStatus(loopCtx, cfg.Daemon.StatusInterval)
			}()

			runErr := a.runner.RunRealtime(ctx, cfg.Simulation.Duration, cfg.Simulation.Speed)
			cancelLoop()
			wg.Wait()

			finalCtx := context.WithoutCancel(ctx)
			if server != nil {
				shutdownCtx, cancel := context.WithTimeout(finalCtx, cfg.Daemon.ShutdownTimeout)
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Log("WARNING", "Metrics server shutdown failed", map[string]interface{}{"error": err.Error()})
				}
				cancel()
			}

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

			fmt.Fprintln(out, NewStatusFormatter(false).FormatSummary(status))
			return runErr
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&enableMetrics, "metrics", false, "Expose Prometheus metrics regardless of config")

	return cmd
}

func newMetricsServer(addr, path string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// logStatus logs a summary line every interval until ctx is done
func (a *app) logStatus(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	logger := appLogging.LoggerFromContext(ctx)
	formatter := NewStatusFormatter(false)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			status := a.runner.Snapshot()
			logger.Log("INFO", "World status", map[string]interface{}{
				"summary":      formatter.FormatSummary(status),
				"ground_items": len(a.spawner.Items()),
			})
		}
	}
}
