package setup

import (
	"reflect"

	"github.com/andrescamacho/outpost-go/internal/application/mediator"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	simCommands "github.com/andrescamacho/outpost-go/internal/application/simulation/commands"
	simQueries "github.com/andrescamacho/outpost-go/internal/application/simulation/queries"
	"github.com/andrescamacho/outpost-go/internal/application/simulation/types"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	runner *simulation.Runner
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(runner *simulation.Runner) *HandlerRegistry {
	return &HandlerRegistry{runner: runner}
}

// RegisterSimulationHandlers registers all simulation command and query handlers with the mediator
//
// This method registers:
//   - DepositItemCommand → DepositItemHandler
//   - InteractCommand → InteractHandler
//   - AdvanceSimulationCommand → AdvanceSimulationHandler
//   - GetWorldStatusQuery → GetWorldStatusHandler
func (r *HandlerRegistry) RegisterSimulationHandlers(m mediator.Mediator) error {
	if err := m.Register(
		reflect.TypeOf(&types.DepositItemCommand{}),
		simCommands.NewDepositItemHandler(r.runner),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&types.InteractCommand{}),
		simCommands.NewInteractHandler(r.runner),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&types.AdvanceSimulationCommand{}),
		simCommands.NewAdvanceSimulationHandler(r.runner),
	); err != nil {
		return err
	}

	if err := m.Register(
		reflect.TypeOf(&simQueries.GetWorldStatusQuery{}),
		simQueries.NewGetWorldStatusHandler(r.runner),
	); err != nil {
		return err
	}

	return nil
}
