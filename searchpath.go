package gorosidl

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/golangros/gorosidl/internal/types"
)

// SharePaths returns candidate share directories discovered from the
// ament/colcon environment, deduplicated and filtered to directories that
// exist. Prefixes from AMENT_PREFIX_PATH and COLCON_PREFIX_PATH
// contribute their share/ subdirectory; ROS_PACKAGE_PATH entries are used
// as-is. An empty environment yields an empty list. The logger (may be
// nil) receives debug/trace output for discovered and rejected paths.
func SharePaths(logger *slog.Logger) []string {
	return sharePaths(componentLogger(logger, "searchpath"))
}

func sharePaths(logger types.Logger) []string {
	var dirs []string
	for _, env := range []string{"AMENT_PREFIX_PATH", "COLCON_PREFIX_PATH"} {
		for _, prefix := range filepath.SplitList(os.Getenv(env)) {
			if prefix != "" {
				dirs = append(dirs, filepath.Join(prefix, "share"))
			}
		}
	}
	for _, p := range filepath.SplitList(os.Getenv("ROS_PACKAGE_PATH")) {
		if p != "" {
			dirs = append(dirs, p)
		}
	}

	var result []string
	for _, p := range dedup(dirs) {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			logger.Trace("search path rejected", slog.String("path", p))
			continue
		}
		logger.Trace("search path", slog.String("path", p))
		result = append(result, p)
	}
	logger.Log(slog.LevelDebug, "search paths discovered",
		slog.Int("candidates", len(dirs)), slog.Int("paths", len(result)))
	return result
}

// FindPackageShare locates the share directory of the given package on
// the discovered search paths.
func FindPackageShare(pkg string) (string, error) {
	return findPackageShare(pkg, types.Logger{})
}

func findPackageShare(pkg string, logger types.Logger) (string, error) {
	for _, dir := range sharePaths(logger) {
		candidate := filepath.Join(dir, pkg)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			logger.Log(slog.LevelDebug, "package share found",
				slog.String("package", pkg), slog.String("path", candidate))
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPackageNotFound, pkg)
}

func dedup(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	var result []string
	for _, p := range paths {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			result = append(result, p)
		}
	}
	return result
}
