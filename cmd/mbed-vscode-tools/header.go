package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbedtools/mbed-vscode-tools/internal/logging"
	"github.com/mbedtools/mbed-vscode-tools/internal/macros"
	"github.com/mbedtools/mbed-vscode-tools/internal/ninja"
	"github.com/mbedtools/mbed-vscode-tools/internal/settings"
)

// HeaderFileName is the default output of the header sink.
const HeaderFileName = "mbed_config.h"

func cmdHeader(args []string) {
	output := ""
	macrosFile := ""
	buildFile := ""
	programDir := ""

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--output" && i+1 < len(args):
			output = args[i+1]
			i++
		case args[i] == "--macros" && i+1 < len(args):
			macrosFile = args[i+1]
			i++
		case args[i] == "--build-file" && i+1 < len(args):
			buildFile = args[i+1]
			i++
		case args[i] == "--program-dir" && i+1 < len(args):
			programDir = args[i+1]
			i++
		case args[i] == "--help" || args[i] == "-h":
			printHeaderUsage()
			return
		case strings.HasPrefix(args[i], "-"):
			fatalf("unknown option: %s", args[i])
		default:
			fatalf("unexpected argument: %s", args[i])
		}
	}

	if programDir == "" {
		var err error
		programDir, err = os.Getwd()
		if err != nil {
			fatal(err)
		}
	}

	s, err := settings.Load(programDir)
	if err != nil {
		fatal(err)
	}
	if buildFile == "" {
		buildFile = s.BuildFile()
	}
	if output == "" {
		output = filepath.Join(s.ProgramDir, HeaderFileName)
	}
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		fatalf("output path %s is a directory", output)
	}

	echoTitle("[Header]")

	artifact, err := ninja.ParseBuildFile(buildFile)
	if err != nil {
		fatal(err)
	}
	echoStep("Scraped %d defines from %s.", len(artifact.Defines), buildFile)

	set := macros.NewSet(logging.Default())
	set.AddAll(artifact.Defines)
	if macrosFile != "" {
		raws, err := macros.LoadFile(macrosFile)
		if err != nil {
			fatal(err)
		}
		set.AddAll(raws)
		echoStep("Loaded %d supplementary macros from %s.", len(raws), macrosFile)
	}

	if err := macros.WriteHeader(output, set); err != nil {
		fatal(err)
	}

	echoDone("%s has been successfully created.", output)
}

func printHeaderUsage() {
	fmt.Print(`mbed-vscode-tools header - Generate a C/C++ configuration header

Usage:
  mbed-vscode-tools header [options]

Renders the scraped macros as '#define' lines sorted by name, wrapped in an
include guard derived from the output filename.

Options:
  --output PATH          Header path (default: <program-dir>/` + HeaderFileName + `)
  --macros FILE          Supplementary macro file, one NAME or NAME=VALUE per line
  --build-file PATH      Explicit build.ninja path, overriding the derived one
  --program-dir DIR      Mbed program directory (default: working directory)
`)
}
