package lockfile_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixelpepes/holderbot/internal/domain"
	"github.com/pixelpepes/holderbot/internal/lockfile"
	"github.com/pixelpepes/holderbot/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestAcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.lock")

	lock, err := lockfile.Acquire(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", os.Getpid()), string(data))

	require.NoError(t, lock.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestAcquire_SecondInstanceRefused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.lock")

	lock, err := lockfile.Acquire(path)
	require.NoError(t, err)
	defer func() { _ = lock.Release() }()

	// The holder is this test process, which is alive
	_, err = lockfile.Acquire(path)
	assert.ErrorIs(t, err, domain.ErrAlreadyRunning)
}

func TestAcquire_StaleLockIsReclaimed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.lock")

	// Far beyond any real pid on this machine
	require.NoError(t, os.WriteFile(path, []byte("99999999\n"), 0o600))

	lock, err := lockfile.Acquire(path)
	require.NoError(t, err)
	defer func() { _ = lock.Release() }()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", os.Getpid()), string(data))
}

func TestAcquire_GarbageLockIsReclaimed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.lock")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid"), 0o600))

	// Unparsable content reads as no holder, but the file still exists so
	// exclusive creation would fail without removal
	lock, err := lockfile.Acquire(path)
	require.NoError(t, err)
	defer func() { _ = lock.Release() }()
}

func TestRelease_MissingFileIsFine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.lock")

	lock, err := lockfile.Acquire(path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))
	assert.NoError(t, lock.Release())
}
