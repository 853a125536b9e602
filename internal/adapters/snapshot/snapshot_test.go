package snapshot_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/adapters/snapshot"
	"github.com/andrescamacho/outpost-go/internal/adapters/world"
	"github.com/andrescamacho/outpost-go/internal/application/simulation"
)

func sampleSnapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		Header: snapshot.Header{SessionID: "session-1234abcd", Elapsed: 12.5, WrittenAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		World: simulation.WorldStatus{
			Elapsed: 12.5,
			Status:  "RUNNING",
			Factories: []simulation.FactoryStatus{
				{Name: "sawmill", State: "CRAFTING", Recipe: "Plank", Power: 0.5, Queue: []string{"Plank"}},
			},
			Monster: &simulation.MonsterStatus{Hunger: 0.75},
		},
		Ground: []world.GroundItem{{ID: "plank-1", Name: "Plank", State: world.ItemStateGround, DropProgress: 1}},
		Events: []simulation.Event{{Time: 3, Kind: simulation.EventRecipeCrafted, Source: "sawmill", Item: "Plank"}},
	}
}

func TestSnapshot_WriteThenRead(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	snap := sampleSnapshot()

	// Act
	require.NoError(t, snapshot.Write(&buf, snap))
	header, err := snapshot.ReadHeader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	read, err := snapshot.Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	// Assert
	assert.Equal(t, snapshot.Version, header.Version)
	assert.Equal(t, "session-1234abcd", header.SessionID)
	assert.Equal(t, snap.World, read.World)
	assert.Equal(t, snap.Ground, read.Ground)
	assert.Equal(t, snap.Events, read.Events)
}

func TestSnapshot_FileRoundTripCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json.zst")

	require.NoError(t, snapshot.WriteFile(path, sampleSnapshot()))
	read, err := snapshot.ReadFile(path)

	require.NoError(t, err)
	assert.InDelta(t, 12.5, read.Header.Elapsed, 1e-9)
}

func TestSnapshot_RejectsGarbage(t *testing.T) {
	_, err := snapshot.Read(bytes.NewReader([]byte("not zstd")))

	assert.Error(t, err)
}
