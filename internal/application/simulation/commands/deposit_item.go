package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/application/logging"
	"github.com/andrescamacho/outpost-go/internal/application/mediator"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	"github.com/andrescamacho/outpost-go/internal/application/simulation/types"
)

// DepositItemHandler - Handles deposit item commands
type DepositItemHandler struct {
	runner *simulation.Runner
}

// NewDepositItemHandler creates a new deposit item handler
func NewDepositItemHandler(runner *simulation.Runner) *DepositItemHandler {
	return &DepositItemHandler{runner: runner}
}

// Handle executes the deposit item command
func (h *DepositItemHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.DepositItemCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	if cmd.Target == "" || cmd.Item == "" {
		return nil, fmt.Errorf("target and item are required")
	}

	count := cmd.Count
	if count == 0 {
		count = 1
	}

	var accepted uint
	err := h.runner.Do(func(w *simulation.World) error {
		var err error
		accepted, err = w.Deposit(cmd.Target, cmd.Intake, cmd.Item, count)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deposit %s into %s: %w", cmd.Item, cmd.Target, err)
	}

	logger := logging.LoggerFromContext(ctx)
	logger.Log("INFO", "Items deposited", map[string]interface{}{
		"target":    cmd.Target,
		"intake":    cmd.Intake,
		"item":      cmd.Item,
		"requested": count,
		"accepted":  accepted,
	})

	return &types.DepositItemResponse{
		Requested: count,
		Accepted:  accepted,
	}, nil
}
