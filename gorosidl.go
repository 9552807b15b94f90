// Package gorosidl parses ROS 2 interface definition files (.msg, .srv,
// .action) into a normalized, fully-qualified model for documentation
// generators and model exporters.
package gorosidl

import (
	"errors"
	"log/slog"
)

// ErrNoSource is returned when an aggregation is called with a nil source.
var ErrNoSource = errors.New("no interface source provided")

// ErrPackageNotFound is returned when a package cannot be located on the
// ament index search paths.
var ErrPackageNotFound = errors.New("package not found on search paths")

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-line iteration logging (raw lines, resolved fields).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = slog.Level(-8)

// File extensions recognized for each interface kind.
const (
	ExtMessage = ".msg"
	ExtService = ".srv"
	ExtAction  = ".action"
)

// LoadOption configures the Load functions.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger    *slog.Logger
	extMsg    string
	extSrv    string
	extAction string
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = logger }
}

// WithExtensions overrides the file extensions recognized for each
// interface kind. An empty argument keeps the default for that kind.
func WithExtensions(msg, srv, action string) LoadOption {
	return func(c *loadConfig) {
		if msg != "" {
			c.extMsg = msg
		}
		if srv != "" {
			c.extSrv = srv
		}
		if action != "" {
			c.extAction = action
		}
	}
}

func newLoadConfig(opts []LoadOption) loadConfig {
	cfg := loadConfig{
		extMsg:    ExtMessage,
		extSrv:    ExtService,
		extAction: ExtAction,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
