package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/adapters/logging"
	"github.com/andrescamacho/outpost-go/internal/infrastructure/config"
)

func TestSlogLogger_JSONIncludesMetadata(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger, err := logging.NewWriterLogger(&buf, "json", "info", false)
	require.NoError(t, err)

	// Act
	logger.With("session", "session-1").Log("INFO", "Items deposited", map[string]interface{}{
		"target":   "sawmill",
		"accepted": 2,
	})

	// Assert
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Items deposited", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "sawmill", entry["target"])
	assert.Equal(t, 2.0, entry["accepted"])
	assert.Equal(t, "session-1", entry["session"])
}

func TestSlogLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewWriterLogger(&buf, "text", "warn", false)
	require.NoError(t, err)

	logger.Log("INFO", "hidden", nil)
	logger.Log("ERROR", "shown", nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("whatever"))
}

func TestNewWriterLogger_RejectsUnknownFormat(t *testing.T) {
	_, err := logging.NewWriterLogger(&bytes.Buffer{}, "xml", "info", false)

	assert.Error(t, err)
}

func TestNewSlogLogger_FileOutput(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "outpost.log")
	logger, err := logging.NewSlogLogger(config.LoggingConfig{
		Level: "info", Format: "text", Output: "file", FilePath: path,
	})
	require.NoError(t, err)

	// Act
	logger.Log("INFO", "Simulation started", map[string]interface{}{"world": "outpost"})
	require.NoError(t, logger.Close())

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Simulation started"))
	assert.Contains(t, string(data), "world=outpost")
}
