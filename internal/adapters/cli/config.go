package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/outpost-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage Outpost configuration settings.

Configuration is loaded from multiple sources with priority:
1. Command flags
2. Environment variables (OUTPOST_* prefix)
3. Config file (config.yaml)
4. User preferences, for values still at their defaults
5. Default values

User preferences are stored in ~/.outpost/config.json

Examples:
  outpost config show
  outpost config set-world configs/world.yaml
  outpost config set-speed 2
  outpost config clear`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetWorldCommand())
	cmd.AddCommand(newConfigSetSpeedCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadSettings()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Fprintln(out, "Outpost Configuration")
			fmt.Fprintln(out, "=====================")

			fmt.Fprintln(out, "User Preferences:")
			fmt.Fprintf(out, "  Config file:      %s\n", userConfigHandler.Path())
			fmt.Fprintf(out, "  Default World:    %s\n", orNotSet(userCfg.DefaultWorld))
			if userCfg.DefaultSpeed > 0 {
				fmt.Fprintf(out, "  Default Speed:    %gx\n", userCfg.DefaultSpeed)
			} else {
				fmt.Fprintln(out, "  Default Speed:    (not set)")
			}

			fmt.Fprintln(out, "\nSimulation:")
			fmt.Fprintf(out, "  World File:       %s\n", cfg.Simulation.WorldFile)
			fmt.Fprintf(out, "  Tick Interval:    %.4fs\n", cfg.Simulation.TickInterval)
			fmt.Fprintf(out, "  Fixed Interval:   %.4fs\n", cfg.Simulation.FixedInterval)
			if cfg.Simulation.Duration > 0 {
				fmt.Fprintf(out, "  Duration:         %.1fs\n", cfg.Simulation.Duration)
			} else {
				fmt.Fprintln(out, "  Duration:         until the game ends")
			}
			fmt.Fprintf(out, "  Speed:            %gx\n", cfg.Simulation.Speed)

			fmt.Fprintln(out, "\nDatabase:")
			fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
			switch {
			case cfg.Database.URL != "":
				fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
			case cfg.Database.Type == "sqlite":
				fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
			default:
				fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
			}

			fmt.Fprintln(out, "\nDaemon:")
			fmt.Fprintf(out, "  PID File:         %s\n", cfg.Daemon.PIDFile)
			fmt.Fprintf(out, "  Status Interval:  %s\n", cfg.Daemon.StatusInterval)
			fmt.Fprintf(out, "  Snapshot Path:    %s\n", orNotSet(cfg.Daemon.SnapshotPath))

			fmt.Fprintln(out, "\nMetrics:")
			fmt.Fprintf(out, "  Enabled:          %v\n", cfg.Metrics.Enabled)
			fmt.Fprintf(out, "  Endpoint:         %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)

			fmt.Fprintln(out, "\nLogging:")
			fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
			fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}

func newConfigSetWorldCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-world <path>",
		Short: "Set the default world file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Refuse files that would fail at the next run
			if _, err := config.LoadWorldDefinition(args[0]); err != nil {
				return err
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetDefaultWorld(args[0]); err != nil {
				return fmt.Errorf("failed to set default world: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ Default world set successfully")
			fmt.Fprintf(cmd.OutOrStdout(), "  World: %s\n", args[0])
			return nil
		},
	}
}

func newConfigSetSpeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-speed <multiplier>",
		Short: "Set the default realtime speed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			speed, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid speed %q: %w", args[0], err)
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetDefaultSpeed(speed); err != nil {
				return fmt.Errorf("failed to set default speed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Default speed set to %gx\n", speed)
			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear user preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.Clear(); err != nil {
				return fmt.Errorf("failed to clear user config: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "✓ User preferences cleared")
			return nil
		},
	}
}

// maskPassword hides the password of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "****")
	return u.String()
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
