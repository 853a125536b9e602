package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/domain/shared"
)

func TestNewCapacity_RejectsNegative(t *testing.T) {
	_, err := shared.NewCapacity(-1, true)

	assert.Error(t, err)
}

func TestCapacity_DrainReportsEmptyingOnce(t *testing.T) {
	// Arrange
	capacity, err := shared.NewCapacity(2, true)
	require.NoError(t, err)

	// Act & Assert
	assert.False(t, capacity.Drain(1))
	assert.True(t, capacity.Drain(1.5))
	assert.True(t, capacity.IsEmpty())
	assert.Equal(t, 0.0, capacity.Current())
	assert.False(t, capacity.Drain(1))
}

func TestCapacity_RefillClampsAtMax(t *testing.T) {
	capacity, err := shared.NewCapacity(10, false)
	require.NoError(t, err)

	applied := capacity.Refill(4)
	assert.Equal(t, 4.0, applied)
	assert.Equal(t, 6.0, capacity.Missing())

	applied = capacity.Refill(100)
	assert.Equal(t, 6.0, applied)
	assert.True(t, capacity.IsFull())
	assert.Equal(t, 1.0, capacity.Fraction())
}

func TestCapacity_RefillIgnoresNonPositive(t *testing.T) {
	capacity, err := shared.NewCapacity(10, false)
	require.NoError(t, err)

	assert.Equal(t, 0.0, capacity.Refill(-5))
	assert.Equal(t, 0.0, capacity.Current())
}

func TestCapacity_ZeroMaxFraction(t *testing.T) {
	capacity, err := shared.NewCapacity(0, true)
	require.NoError(t, err)

	assert.Equal(t, 0.0, capacity.Fraction())
	assert.True(t, capacity.IsEmpty())
}
