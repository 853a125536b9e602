package config

// SimulationConfig holds the loop settings of a simulation session
type SimulationConfig struct {
	// World definition file (YAML)
	WorldFile string `mapstructure:"world_file" validate:"required"`

	// Logic step in simulated seconds
	TickInterval float64 `mapstructure:"tick_interval" validate:"gt=0"`

	// Physics step in simulated seconds
	FixedInterval float64 `mapstructure:"fixed_interval" validate:"gt=0"`

	// Simulated seconds for `run`; 0 runs until the game ends or is interrupted
	Duration float64 `mapstructure:"duration" validate:"min=0"`

	// Wall clock speed multiplier for realtime runs
	Speed float64 `mapstructure:"speed" validate:"gt=0"`

	// Seed for deposit loot rolls; 0 picks a random seed
	Seed uint64 `mapstructure:"seed"`
}
