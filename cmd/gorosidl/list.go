package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

const listUsage = `gorosidl list - List interface names in a package

Usage:
  gorosidl list [options] PACKAGE

Options:
  --count      Print only the interface count
  --json       Output as JSON array
  -h, --help   Show help

Examples:
  gorosidl list geometry_msgs
  gorosidl list ./testdata/demo_pkg --json
`

func (c *cli) cmdList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, listUsage) }

	count := fs.Bool("count", false, "print only interface count")
	jsonOut := fs.Bool("json", false, "output as JSON array")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		fmt.Fprint(os.Stdout, listUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, listUsage)
		return exitError
	}

	pkg, err := c.loadPackage(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gorosidl list: %v\n", err)
		return exitError
	}

	names := pkg.Interfaces()
	switch {
	case *count:
		fmt.Println(len(names))
	case *jsonOut:
		out, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "gorosidl list: %v\n", err)
			return exitError
		}
		fmt.Println(string(out))
	default:
		for _, name := range names {
			fmt.Println(name)
		}
	}
	return exitOK
}
