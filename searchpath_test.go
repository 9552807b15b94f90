package gorosidl

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearPathEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AMENT_PREFIX_PATH", "")
	t.Setenv("COLCON_PREFIX_PATH", "")
	t.Setenv("ROS_PACKAGE_PATH", "")
}

func TestSharePathsFromAmentPrefix(t *testing.T) {
	clearPathEnv(t)

	prefix := t.TempDir()
	share := filepath.Join(prefix, "share")
	require.NoError(t, os.Mkdir(share, 0o755))
	t.Setenv("AMENT_PREFIX_PATH", prefix)

	paths := SharePaths(nil)
	assert.Equal(t, []string{share}, paths)
}

func TestSharePathsSkipsMissingAndDuplicates(t *testing.T) {
	clearPathEnv(t)

	prefix := t.TempDir()
	share := filepath.Join(prefix, "share")
	require.NoError(t, os.Mkdir(share, 0o755))

	missing := filepath.Join(prefix, "nope")
	t.Setenv("AMENT_PREFIX_PATH", prefix+string(os.PathListSeparator)+missing+string(os.PathListSeparator)+prefix)

	paths := SharePaths(nil)
	assert.Equal(t, []string{share}, paths)
}

func TestSharePathsEmptyEnvironment(t *testing.T) {
	clearPathEnv(t)
	assert.Empty(t, SharePaths(nil))
}

func TestSharePathsLogsDiscovery(t *testing.T) {
	clearPathEnv(t)

	prefix := t.TempDir()
	share := filepath.Join(prefix, "share")
	require.NoError(t, os.Mkdir(share, 0o755))

	missing := filepath.Join(prefix, "nope")
	t.Setenv("AMENT_PREFIX_PATH", prefix+string(os.PathListSeparator)+missing)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	paths := SharePaths(logger)
	assert.Equal(t, []string{share}, paths)

	out := buf.String()
	assert.Contains(t, out, "search path")
	assert.Contains(t, out, share)
	assert.Contains(t, out, "search path rejected")
	assert.Contains(t, out, filepath.Join(missing, "share"))
	assert.Contains(t, out, "search paths discovered")
}

func TestFindPackageShare(t *testing.T) {
	clearPathEnv(t)

	prefix := t.TempDir()
	pkgShare := filepath.Join(prefix, "share", "demo_pkg")
	require.NoError(t, os.MkdirAll(pkgShare, 0o755))
	t.Setenv("AMENT_PREFIX_PATH", prefix)

	got, err := FindPackageShare("demo_pkg")
	require.NoError(t, err)
	assert.Equal(t, pkgShare, got)

	_, err = FindPackageShare("unknown_pkg")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestLoadPackageFromIndex(t *testing.T) {
	clearPathEnv(t)

	prefix := t.TempDir()
	msgDir := filepath.Join(prefix, "share", "demo_pkg", "msg")
	require.NoError(t, os.MkdirAll(msgDir, 0o755))
	writeFile(t, msgDir, "Ping.msg", "time stamp\n")
	t.Setenv("AMENT_PREFIX_PATH", prefix)

	pkg, err := LoadPackageFromIndex("demo_pkg")
	require.NoError(t, err)
	require.NotNil(t, pkg.FindMessage("Ping"))

	_, err = LoadPackageFromIndex("unknown_pkg")
	assert.ErrorIs(t, err, ErrPackageNotFound)
}
