package config

import "time"

// DaemonConfig configures `serve`, the realtime session that runs until stopped
type DaemonConfig struct {
	// Only one daemon may hold this file at a time
	PIDFile string `mapstructure:"pid_file" validate:"required"`

	// Period of the status log line and the world metrics poll
	StatusInterval  time.Duration `mapstructure:"status_interval" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`

	// Snapshot written on shutdown; empty disables it
	SnapshotPath string `mapstructure:"snapshot_path"`
}
