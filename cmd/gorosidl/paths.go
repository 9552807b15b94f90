package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golangros/gorosidl"
)

const pathsUsage = `gorosidl paths - Show interface search paths

Usage:
  gorosidl paths

Prints the share directories discovered from AMENT_PREFIX_PATH,
COLCON_PREFIX_PATH, and ROS_PACKAGE_PATH, in lookup order.

Options:
  -h, --help   Show help
`

func (c *cli) cmdPaths(args []string) int {
	fs := flag.NewFlagSet("paths", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, pathsUsage) }

	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		fmt.Fprint(os.Stdout, pathsUsage)
		return exitOK
	}

	paths := gorosidl.SharePaths(c.logger())
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "no search paths discovered (is the ROS environment sourced?)")
		return exitOK
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return exitOK
}
