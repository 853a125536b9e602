package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/application/mediator"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	"github.com/andrescamacho/outpost-go/internal/application/simulation/types"
)

// AdvanceSimulationHandler - Handles advance simulation commands
type AdvanceSimulationHandler struct {
	runner *simulation.Runner
}

// NewAdvanceSimulationHandler creates a new advance simulation handler
func NewAdvanceSimulationHandler(runner *simulation.Runner) *AdvanceSimulationHandler {
	return &AdvanceSimulationHandler{runner: runner}
}

// Handle executes the advance simulation command
func (h *AdvanceSimulationHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.AdvanceSimulationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if cmd.Seconds < 0 {
		return nil, fmt.Errorf("seconds cannot be negative")
	}

	if err := h.runner.Advance(ctx, cmd.Seconds); err != nil {
		return nil, fmt.Errorf("failed to advance simulation: %w", err)
	}

	status := h.runner.Snapshot()
	return &types.AdvanceSimulationResponse{
		Elapsed: status.Elapsed,
		Ticks:   h.runner.Ticks(),
		Status:  status.Status,
	}, nil
}
