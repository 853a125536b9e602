package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/adapters/cli"
	"github.com/andrescamacho/outpost-go/internal/adapters/snapshot"
)

const sawmillWorld = `
items:
  - {name: Wood, category: FUEL, fuel_power: 3}
  - {name: Plank}
  - {name: Engine, category: ROCKET_PART, build_index: 0}
factories:
  - name: sawmill
    output_delay: 0.5
    output_cooldown: 0.2
    power_capacity: 60
    automatic_craft: true
    recipes:
      - name: Plank
        duration: 2
        input: [{item: Wood, count: 2}]
        output: [{item: Plank, count: 1}]
rocket_pad:
  fuel_capacity: 2
script:
  - {at: 0.5, action: deposit, target: sawmill, intake: craft, item: Wood, count: 2}
`

// testEnv writes a world and config into a temp dir and isolates HOME
func testEnv(t *testing.T) (configPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("HOME", dir)

	worldPath := filepath.Join(dir, "world.yaml")
	require.NoError(t, os.WriteFile(worldPath, []byte(sawmillWorld), 0o644))

	configPath = filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`
simulation:
  world_file: %s
  tick_interval: 0.05
  fixed_interval: 0.02
database:
  type: sqlite
  path: %s
daemon:
  pid_file: %s
logging:
  output: file
  file_path: %s
`, worldPath, filepath.Join(dir, "outpost.db"), filepath.Join(dir, "outpost.pid"), filepath.Join(dir, "outpost.log"))
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath, dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRunCommand_RecordsSessionAndSnapshot(t *testing.T) {
	// Arrange
	configPath, dir := testEnv(t)
	snapshotPath := filepath.Join(dir, "out", "state.json.zst")

	// Act
	out, err := execute(t, "--config", configPath, "run", "--duration", "5", "--snapshot", snapshotPath, "-q")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "status=RUNNING")
	assert.Contains(t, out, "elapsed=5.00s")

	snap, err := snapshot.ReadFile(snapshotPath)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, snap.World.Elapsed, 1e-6)
	require.Len(t, snap.World.Factories, 1)
	assert.Equal(t, "sawmill", snap.World.Factories[0].Name)

	sessions, err := execute(t, "--config", configPath, "progress", "sessions")
	require.NoError(t, err)
	assert.Contains(t, sessions, "RUNNING")
	assert.Contains(t, sessions, "world.yaml")
}

func TestRunCommand_PrebuiltRocketMarksProgress(t *testing.T) {
	// Arrange
	configPath, _ := testEnv(t)

	// Act
	_, err := execute(t, "--config", configPath, "run", "--duration", "1", "--prebuilt-rocket", "-q")
	require.NoError(t, err)
	shown, err := execute(t, "--config", configPath, "progress", "show")
	require.NoError(t, err)

	// Assert
	assert.Contains(t, shown, "Rocket built:  yes")

	_, err = execute(t, "--config", configPath, "progress", "reset")
	require.NoError(t, err)
	shown, err = execute(t, "--config", configPath, "progress", "show")
	require.NoError(t, err)
	assert.Contains(t, shown, "Rocket built:  no")
}

func TestRunCommand_RejectsNegativeDuration(t *testing.T) {
	configPath, _ := testEnv(t)

	_, err := execute(t, "--config", configPath, "run", "--duration", "-1")

	assert.Error(t, err)
}

func TestCatalogCommand_ListsItemsAndRecipes(t *testing.T) {
	configPath, _ := testEnv(t)

	out, err := execute(t, "--config", configPath, "catalog", "--recipes")

	require.NoError(t, err)
	assert.Contains(t, out, "Wood")
	assert.Contains(t, out, "3.0s power")
	assert.Contains(t, out, "part #0")
	assert.Contains(t, out, "Wood×2")
}

func TestConfigCommands_StoreUserPreferences(t *testing.T) {
	// Arrange
	configPath, dir := testEnv(t)
	worldPath := filepath.Join(dir, "world.yaml")

	// Act
	_, err := execute(t, "--config", configPath, "config", "set-world", worldPath)
	require.NoError(t, err)
	_, err = execute(t, "--config", configPath, "config", "set-speed", "3")
	require.NoError(t, err)
	shown, err := execute(t, "--config", configPath, "config", "show")
	require.NoError(t, err)

	// Assert
	assert.Contains(t, shown, "Default World:    "+worldPath)
	assert.Contains(t, shown, "Default Speed:    3x")

	_, err = execute(t, "--config", configPath, "config", "set-speed", "0")
	assert.Error(t, err)
	_, err = execute(t, "--config", configPath, "config", "clear")
	require.NoError(t, err)
}
