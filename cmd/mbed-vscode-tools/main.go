package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "configure":
		cmdConfigure(os.Args[2:])
	case "update":
		cmdUpdate(os.Args[2:])
	case "header":
		cmdHeader(os.Args[2:])
	case "init":
		cmdInit(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("mbed-vscode-tools version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`mbed-vscode-tools - VS Code C/C++ configuration for Mbed programs

Usage:
  mbed-vscode-tools <command> [options]

Commands:
  configure   Check the program tree, regenerate build.ninja, save settings
  update      Scrape build.ninja and update c_cpp_properties.json
  header      Scrape build.ninja and generate a C/C++ config header
  init        Write a starter c_cpp_properties.json
  version     Show version
  help        Show this help

Run 'mbed-vscode-tools <command> --help' for more information on a command.
`)
}
