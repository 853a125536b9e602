package types

// Simulation command types - shared between handlers, setup and adapters

// DepositItemCommand - Command to drop units of an item into a target's intake
type DepositItemCommand struct {
	Target string
	Intake string // "craft", "fuel", "parts" or "mouth"
	Item   string
	Count  uint // 0 = one unit
}

// DepositItemResponse - Response from deposit item command
type DepositItemResponse struct {
	Requested uint
	Accepted  uint
}

// InteractCommand - Command to use a target the way the player would
type InteractCommand struct {
	Target string
}

// InteractResponse - Response from interact command
type InteractResponse struct {
	Interacted bool
}

// AdvanceSimulationCommand - Command to run the world for simulated seconds
type AdvanceSimulationCommand struct {
	Seconds float64
}

// AdvanceSimulationResponse - Response from advance simulation command
type AdvanceSimulationResponse struct {
	Elapsed float64
	Ticks   int
	Status  string // "RUNNING", "LAUNCHED" or "LOST"
}
