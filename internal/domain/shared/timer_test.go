package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

func TestTimer_StoppedTimerReportsZero(t *testing.T) {
	timer := shared.NewTimer(2)

	assert.False(t, timer.IsStarted())
	assert.Equal(t, 0.0, timer.Progress())
	assert.Equal(t, 0.0, timer.Cooldown())
	assert.False(t, timer.Timeout(1, false))
	assert.Equal(t, 0.0, timer.Remaining())
}

func TestTimer_ProgressAndCooldown(t *testing.T) {
	// Arrange
	timer := shared.NewTimer(4)
	timer.Start()

	// Act
	ended := timer.Timeout(1, false)

	// Assert
	assert.False(t, ended)
	assert.InDelta(t, 0.25, timer.Progress(), 1e-9)
	assert.InDelta(t, 0.75, timer.Cooldown(), 1e-9)
	assert.InDelta(t, 1.0, timer.Elapsed(), 1e-9)
}

func TestTimer_NonLoopingStopsOnTimeout(t *testing.T) {
	timer := shared.NewTimer(1)
	timer.Start()

	assert.True(t, timer.Timeout(1.5, false))
	assert.False(t, timer.IsStarted())
	assert.Equal(t, 0.0, timer.Remaining())
	assert.False(t, timer.Timeout(1, false))
}

func TestTimer_LoopingCarriesOverflow(t *testing.T) {
	timer := shared.NewTimer(1)
	timer.Start()

	assert.True(t, timer.Timeout(1.25, true))
	assert.True(t, timer.IsStarted())
	assert.InDelta(t, 0.75, timer.Remaining(), 1e-9)
}

func TestTimer_NegativeDeltaRefillsWithoutClamp(t *testing.T) {
	timer := shared.NewTimer(2)
	timer.Start()
	timer.Timeout(1.5, false)

	assert.False(t, timer.Timeout(-3, false))
	assert.InDelta(t, 3.5, timer.Remaining(), 1e-9)
	assert.Equal(t, 0.0, timer.Progress())
	assert.Equal(t, 1.0, timer.Cooldown())
}

func TestTimer_ZeroDurationEndsImmediately(t *testing.T) {
	timer := shared.NewTimer(0)
	timer.Start()

	assert.Equal(t, 0.0, timer.Progress())
	assert.Equal(t, 0.0, timer.Cooldown())
	assert.True(t, timer.Timeout(0, false))
}

func TestTimer_StartResetsRemaining(t *testing.T) {
	timer := shared.NewTimer(3)
	timer.Start()
	timer.Timeout(2, false)

	timer.Start()

	assert.Equal(t, 3.0, timer.Remaining())
}
