package config

import "time"

// Built-in simulation defaults
const (
	DefaultWorldFile     = "configs/world.yaml"
	DefaultTickInterval  = 1.0 / 60.0
	DefaultFixedInterval = 0.02
	DefaultSpeed         = 1.0
)

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Simulation defaults
	if cfg.Simulation.WorldFile == "" {
		cfg.Simulation.WorldFile = DefaultWorldFile
	}
	if cfg.Simulation.TickInterval == 0 {
		cfg.Simulation.TickInterval = DefaultTickInterval
	}
	if cfg.Simulation.FixedInterval == 0 {
		cfg.Simulation.FixedInterval = DefaultFixedInterval
	}
	if cfg.Simulation.Speed == 0 {
		cfg.Simulation.Speed = DefaultSpeed
	}

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "outpost.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "outpost"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "outpost"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Daemon defaults
	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/outpost.pid"
	}
	if cfg.Daemon.StatusInterval == 0 {
		cfg.Daemon.StatusInterval = 5 * time.Second
	}
	if cfg.Daemon.ShutdownTimeout == 0 {
		cfg.Daemon.ShutdownTimeout = 10 * time.Second
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9102
	}
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}
