package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golangros/gorosidl/render"
)

const genUsage = `gorosidl gen - Export a resolved package as YAML

Usage:
  gorosidl gen [options] PACKAGE

Options:
  -o DIR       Write <package>.yaml into DIR instead of stdout
  -h, --help   Show help

Examples:
  gorosidl gen geometry_msgs
  gorosidl gen -o out ./testdata/demo_pkg
`

func (c *cli) cmdGen(args []string) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(os.Stderr, genUsage) }

	outDir := fs.String("o", "", "output directory")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		fmt.Fprint(os.Stdout, genUsage)
		return exitOK
	}

	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, genUsage)
		return exitError
	}

	pkg, err := c.loadPackage(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "gorosidl gen: %v\n", err)
		return exitError
	}

	if *outDir == "" {
		if err := render.WriteYAML(os.Stdout, pkg); err != nil {
			fmt.Fprintf(os.Stderr, "gorosidl gen: %v\n", err)
			return exitError
		}
		return exitOK
	}

	if err := render.EnsureOutputDir(*outDir); err != nil {
		fmt.Fprintf(os.Stderr, "gorosidl gen: %v\n", err)
		return exitError
	}
	path := filepath.Join(*outDir, pkg.Name+".yaml")
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gorosidl gen: %v\n", err)
		return exitError
	}
	if err := render.WriteYAML(f, pkg); err != nil {
		_ = f.Close()
		fmt.Fprintf(os.Stderr, "gorosidl gen: %v\n", err)
		return exitError
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "gorosidl gen: %v\n", err)
		return exitError
	}
	fmt.Println(path)
	return exitOK
}
