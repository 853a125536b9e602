package pidfile_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/outpost-go/internal/infrastructure/pidfile"
)

func TestPIDFile_AcquireWritesCurrentPID(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "run", "outpost.pid")
	pf := pidfile.New(path)

	// Act
	require.NoError(t, pf.Acquire())

	// Assert
	pid, err := pf.Read()
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
	assert.True(t, pf.Running())
}

func TestPIDFile_AcquireFailsWhileOwnerIsAlive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outpost.pid")
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644))

	err := pidfile.New(path).Acquire()

	assert.ErrorIs(t, err, pidfile.ErrAlreadyRunning)
}

func TestPIDFile_AcquireReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outpost.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0o644))
	pf := pidfile.New(path)

	require.NoError(t, pf.Acquire())

	pid, err := pf.Read()
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)
}

func TestPIDFile_ReleaseIsIdempotent(t *testing.T) {
	pf := pidfile.New(filepath.Join(t.TempDir(), "outpost.pid"))
	require.NoError(t, pf.Acquire())

	require.NoError(t, pf.Release())
	require.NoError(t, pf.Release())
	assert.False(t, pf.Running())
}
