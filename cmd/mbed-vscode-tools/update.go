package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mbedtools/mbed-vscode-tools/internal/logging"
	"github.com/mbedtools/mbed-vscode-tools/internal/macros"
	"github.com/mbedtools/mbed-vscode-tools/internal/ninja"
	"github.com/mbedtools/mbed-vscode-tools/internal/properties"
	"github.com/mbedtools/mbed-vscode-tools/internal/settings"
)

func cmdUpdate(args []string) {
	macrosFile := ""
	entry := ""
	buildFile := ""
	programDir := ""
	indent := properties.DefaultIndent

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--macros" && i+1 < len(args):
			macrosFile = args[i+1]
			i++
		case args[i] == "--entry" && i+1 < len(args):
			entry = args[i+1]
			i++
		case args[i] == "--build-file" && i+1 < len(args):
			buildFile = args[i+1]
			i++
		case args[i] == "--program-dir" && i+1 < len(args):
			programDir = args[i+1]
			i++
		case args[i] == "--indent" && i+1 < len(args):
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n <= 0 {
				fatalf("invalid indent width %q", args[i+1])
			}
			indent = n
			i++
		case args[i] == "--help" || args[i] == "-h":
			printUpdateUsage()
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
	if entry == "" {
		entry = s.ConfEntry
	}
	if entry == "" {
		entry = properties.DefaultEntry
	}
	if buildFile == "" {
		buildFile = s.BuildFile()
	}

	echoTitle("[Update]")

	artifact, err := ninja.ParseBuildFile(buildFile)
	if err != nil {
		fatal(err)
	}
	echoStep("Scraped %d include paths and %d defines from %s.",
		len(artifact.IncludePaths), len(artifact.Defines), buildFile)

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

	doc, err := properties.Load(s.PropertiesFile)
	if err != nil {
		fatal(err)
	}
	if err := doc.Update(entry, artifact.IncludePaths, macros.Strings(set.InOrder())); err != nil {
		fatal(err)
	}
	if err := doc.Save(indent); err != nil {
		fatal(err)
	}

	echoDone("%s has been successfully updated.", doc.Path())
}

func printUpdateUsage() {
	fmt.Print(`mbed-vscode-tools update - Scrape build.ninja and update c_cpp_properties.json

Usage:
  mbed-vscode-tools update [options]

Uses the settings saved by 'configure' to find build.ninja and the
properties file, then overwrites the managed entry's includePath and
defines.

Options:
  --macros FILE          Supplementary macro file, one NAME or NAME=VALUE per line
  --entry NAME           Configuration entry to update (default: saved entry)
  --build-file PATH      Explicit build.ninja path, overriding the derived one
  --program-dir DIR      Mbed program directory (default: working directory)
  --indent N             Indentation width for the rewritten JSON (default: ` + strconv.Itoa(properties.DefaultIndent) + `)
`)
}
