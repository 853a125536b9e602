package setup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/application/mediator"
	"github.com/andrescamacho/outpost-go/internal/application/setup"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
	simQueries "github.com/andrescamacho/outpost-go/internal/application/simulation/queries"
	"github.com/andrescamacho/outpost-go/internal/application/simulation/types"
)

func newTestMediator(t *testing.T) mediator.Mediator {
	t.Helper()
	world, script, _ := buildOutpost(t)
	runner, err := simulation.NewRunner(world, simulation.RunnerConfig{TickInterval: 0.1, FixedInterval: 0.02}, script)
	require.NoError(t, err)

	m := mediator.NewMediator()
	require.NoError(t, setup.NewHandlerRegistry(runner).RegisterSimulationHandlers(m))
	return m
}

func TestHandlerRegistry_RegistersEverySimulationRequest(t *testing.T) {
	m := newTestMediator(t)
	ctx := context.Background()

	// Act & Assert: deposit
	resp, err := m.Send(ctx, &types.DepositItemCommand{Target: "monster", Intake: "mouth", Item: "Berry", Count: 3})
	require.NoError(t, err)
	deposit := resp.(*types.DepositItemResponse)
	assert.Equal(t, uint(3), deposit.Requested)
	assert.Equal(t, uint(3), deposit.Accepted)

	// Act & Assert: interact
	resp, err = m.Send(ctx, &types.InteractCommand{Target: "sawmill"})
	require.NoError(t, err)
	assert.True(t, resp.(*types.InteractResponse).Interacted)

	// Act & Assert: advance
	resp, err = m.Send(ctx, &types.AdvanceSimulationCommand{Seconds: 1})
	require.NoError(t, err)
	advance := resp.(*types.AdvanceSimulationResponse)
	assert.InDelta(t, 1.0, advance.Elapsed, 1e-9)
	assert.Equal(t, 10, advance.Ticks)
	assert.Equal(t, "RUNNING", advance.Status)

	// Act & Assert: status
	resp, err = m.Send(ctx, &simQueries.GetWorldStatusQuery{})
	require.NoError(t, err)
	status := resp.(*simQueries.GetWorldStatusResponse).Status
	assert.InDelta(t, 1.0, status.Elapsed, 1e-9)
	require.NotNil(t, status.Monster)
	require.Len(t, status.Factories, 1)
}

func TestHandlerRegistry_DoubleRegistrationFails(t *testing.T) {
	world, _, _ := buildOutpost(t)
	runner, err := simulation.NewRunner(world, simulation.RunnerConfig{TickInterval: 0.1, FixedInterval: 0.1}, nil)
	require.NoError(t, err)
	m := mediator.NewMediator()
	registry := setup.NewHandlerRegistry(runner)
	require.NoError(t, registry.RegisterSimulationHandlers(m))

	err = registry.RegisterSimulationHandlers(m)

	assert.Error(t, err)
}

func TestDepositItemHandler_UnknownItemFails(t *testing.T) {
	m := newTestMediator(t)

	_, err := m.Send(context.Background(), &types.DepositItemCommand{Target: "sawmill", Intake: "craft", Item: "Wod"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "Wood"`)
}

func TestAdvanceSimulationHandler_RejectsNegativeSeconds(t *testing.T) {
	m := newTestMediator(t)

	_, err := m.Send(context.Background(), &types.AdvanceSimulationCommand{Seconds: -1})

	assert.Error(t, err)
}
