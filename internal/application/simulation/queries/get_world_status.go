package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/outpost-go/internal/application/mediator"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
)

// GetWorldStatusQuery represents a query for the current world state
type GetWorldStatusQuery struct{}

// GetWorldStatusResponse represents the result of getting the world state
type GetWorldStatusResponse struct {
	Status simulation.WorldStatus
}

// GetWorldStatusHandler handles the GetWorldStatus query
type GetWorldStatusHandler struct {
	runner *simulation.Runner
}

// NewGetWorldStatusHandler creates a new GetWorldStatusHandler
func NewGetWorldStatusHandler(runner *simulation.Runner) *GetWorldStatusHandler {
	return &GetWorldStatusHandler{runner: runner}
}

// Handle executes the GetWorldStatus query
func (h *GetWorldStatusHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	if _, ok := request.(*GetWorldStatusQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetWorldStatusQuery")
	}

	return &GetWorldStatusResponse{
		Status: h.runner.Snapshot(),
	}, nil
}
