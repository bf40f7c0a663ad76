// meshtool generates, inspects and exports meshes without opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(args)
	case "export", "x":
		err = cmdExport(args)
	case "scene":
		err = cmdScene(args)
	case "shapes":
		cmdShapes()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - parametric mesh utility

Usage:
  meshtool <command> [options]

Commands:
  info <shape> [flags]                  Show vertex, triangle and bounds info
  export <shape> -o <file> [flags]      Write the mesh as .stl or .obj
  scene [file.yaml]                     Validate a scene (built-in room if omitted)
  shapes                                List known shapes

Shape flags:
  -radius -base -top -height -width -depth -sectors -stacks -sides

Examples:
  meshtool info sphere -radius 2 -sectors 36 -stacks 18
  meshtool export cylinder -base 1 -top 0.5 -height 3 -o can.stl
  meshtool export hexagon -o hex.obj
  meshtool scene room.yaml`)
}
