package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/application/logging"
	"github.com/andrescamacho/outpost-go/internal/application/mediator"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	"github.com/andrescamacho/outpost-go/internal/application/simulation/types"
)

// InteractHandler - Handles interact commands
type InteractHandler struct {
	runner *simulation.Runner
}

// NewInteractHandler creates a new interact handler
func NewInteractHandler(runner *simulation.Runner) *InteractHandler {
	return &InteractHandler{runner: runner}
}

// Handle executes the interact command
func (h *InteractHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*types.InteractCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	var interacted bool
	err := h.runner.Do(func(w *simulation.World) error {
		var err error
		interacted, err = w.Interact(cmd.Target)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger := logging.LoggerFromContext(ctx)
	logger.Log("DEBUG", "Interaction attempted", map[string]interface{}{
		"target":     cmd.Target,
		"interacted": interacted,
	})

	return &types.InteractResponse{Interacted: interacted}, nil
}
