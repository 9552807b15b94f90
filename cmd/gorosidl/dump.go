package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

const dumpUsage = `gorosidl dump - Output a resolved package as JSON

Usage:
  gorosidl dump [options] PACKAGE

Fields appear in declaration order; compound types use the quoted
package-qualified form ('pkg/msg/Type', optionally []-suffixed).

Options:
  -h, --help   Show help

Examples:
  gorosidl dump geometry_msgs
  gorosidl dump ./testdata/demo_pkg
`

func (c *cli) cmdDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, dumpUsage) }

	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		fmt.Fprint(os.Stdout, dumpUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, dumpUsage)
		return exitError
	}

	pkg, err := c.loadPackage(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gorosidl dump: %v\n", err)
		return exitError
	}

	out, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "gorosidl dump: %v\n", err)
		return exitError
	}
	fmt.Println(string(out))
	return exitOK
}
