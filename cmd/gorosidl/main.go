// Command gorosidl is a CLI tool for loading, inspecting, and exporting
// ROS 2 interface definitions.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/golangros/gorosidl"
	"github.com/golangros/gorosidl/ifc"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error or processing failure
)

const usage = `gorosidl - ROS 2 interface parser and export tool

Usage:
  gorosidl <command> [options] [arguments]

Commands:
  list    List interface names in a package
  dump    Output a resolved package as JSON
  gen     Export a resolved package as YAML
  paths   Show interface search paths
  version Show version

Common options:
  -v, --verbose     Enable debug logging
  -vv               Enable trace logging (implies -v)
  -h, --help        Show help

A package argument is either a share directory path (containing msg/,
srv/, action/ subdirectories) or a package name resolved against the
AMENT_PREFIX_PATH / ROS_PACKAGE_PATH environment.

Examples:
  gorosidl list geometry_msgs
  gorosidl dump ./testdata/demo_pkg
  gorosidl gen -o out geometry_msgs
  gorosidl paths
`

type cli struct {
	verbose  int
	helpFlag bool
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }

	var c cli
	args := os.Args[1:]
	var cmdArgs []string
	var cmd string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			c.helpFlag = true
		case arg == "-v" || arg == "--verbose":
			if c.verbose < 1 {
				c.verbose = 1
			}
		case arg == "-vv":
			c.verbose = 2
		case cmd == "":
			cmd = arg
		default:
			cmdArgs = append(cmdArgs, arg)
		}
	}

	if cmd == "" {
		fmt.Fprint(os.Stderr, usage)
		if c.helpFlag {
			return exitOK
		}
		return exitError
	}

	switch cmd {
	case "list":
		return c.cmdList(cmdArgs)
	case "dump":
		return c.cmdDump(cmdArgs)
	case "gen":
		return c.cmdGen(cmdArgs)
	case "paths":
		return c.cmdPaths(cmdArgs)
	case "version":
		return cmdVersion()
	default:
		fmt.Fprintf(os.Stderr, "gorosidl: unknown command %q\n\n%s", cmd, usage)
		return exitError
	}
}

// logger builds a stderr logger honoring the verbosity flags. Returns nil
// when logging is off, which the library treats as zero-overhead silence.
func (c *cli) logger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = gorosidl.LevelTrace
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadPackage resolves the package argument: an existing directory is
// loaded as a share dir, anything else is looked up on the search paths.
func (c *cli) loadPackage(arg string) (*ifc.Package, error) {
	opts := []gorosidl.LoadOption{}
	if l := c.logger(); l != nil {
		opts = append(opts, gorosidl.WithLogger(l))
	}

	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, err
		}
		return gorosidl.LoadPackage(filepath.Base(abs), arg, opts...)
	}
	return gorosidl.LoadPackageFromIndex(arg, opts...)
}

func cmdVersion() int {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("gorosidl %s\n", version)
	return exitOK
}
