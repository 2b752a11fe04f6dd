package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbedtools/mbed-vscode-tools/internal/cmake"
	"github.com/mbedtools/mbed-vscode-tools/internal/properties"
	"github.com/mbedtools/mbed-vscode-tools/internal/settings"
)

func cmdConfigure(args []string) {
	profile := "develop"
	programDir := ""
	entry := properties.DefaultEntry
	var positional []string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--profile" && i+1 < len(args):
			profile = args[i+1]
			i++
		case args[i] == "--program-dir" && i+1 < len(args):
			programDir = args[i+1]
			i++
		case args[i] == "--entry" && i+1 < len(args):
			entry = args[i+1]
			i++
		case args[i] == "--help" || args[i] == "-h":
			printConfigureUsage()
			return
		case strings.HasPrefix(args[i], "-"):
			fatalf("unknown option: %s", args[i])
		default:
			positional = append(positional, args[i])
		}
	}

	if len(positional) != 3 {
		printConfigureUsage()
		os.Exit(1)
	}

	toolchain := strings.ToUpper(positional[0])
	target := strings.ToUpper(positional[1])
	propsFile, err := filepath.Abs(positional[2])
	if err != nil {
		fatal(err)
	}

	if toolchain != "GCC_ARM" && toolchain != "ARM" {
		fatalf("unsupported toolchain %q: choose GCC_ARM or ARM", positional[0])
	}
	profile = strings.ToLower(profile)
	if profile != "debug" && profile != "develop" && profile != "release" {
		fatalf("unsupported profile %q: choose debug, develop or release", profile)
	}

	if programDir == "" {
		programDir, err = os.Getwd()
		if err != nil {
			fatal(err)
		}
	}
	programDir, err = filepath.Abs(programDir)
	if err != nil {
		fatal(err)
	}

	echoTitle("[Configure]")

	// The named entry must already exist, and exactly once.
	doc, err := properties.Load(propsFile)
	if err != nil {
		fatal(err)
	}
	if err := doc.CheckEntry(entry); err != nil {
		if errors.Is(err, properties.ErrEntryNotFound) {
			err = fmt.Errorf("%w; create the %q entry in %s before configuring", err, entry, propsFile)
		}
		fatal(err)
	}
	echoStep("c_cpp_properties.json check done.")

	s := &settings.Settings{
		Toolchain:      toolchain,
		Target:         target,
		Profile:        profile,
		ProgramDir:     programDir,
		PropertiesFile: propsFile,
		ConfEntry:      entry,
	}

	buildDir := s.BuildDir()
	if info, err := os.Stat(buildDir); err != nil || !info.IsDir() {
		fatalf("could not find the CMake build directory (%s); run 'mbed-tools configure' first", buildDir)
	}
	echoStep("CMake build directory check done.")

	if _, err := os.Stat(s.CMakeConfFile()); err != nil {
		fatalf("could not find the CMake configuration file (%s); run 'mbed-tools configure' first", s.CMakeConfFile())
	}
	echoStep("CMake configuration file check done.")

	if err := cmake.NewRunner().Generate(context.Background(), programDir, buildDir); err != nil {
		fatal(err)
	}
	echoStep("build.ninja generation done (%s).", s.BuildFile())

	if err := s.Save(); err != nil {
		fatal(err)
	}
	echoStep("Tool settings saved (%s).", settings.Path(programDir))

	echoDone("Configuration finished!")
}

func printConfigureUsage() {
	fmt.Print(`mbed-vscode-tools configure - Check the program tree and regenerate build.ninja

Usage:
  mbed-vscode-tools configure <toolchain> <target> <properties-file> [options]

Arguments:
  toolchain         GCC_ARM or ARM
  target            Build target for an Mbed-enabled device (e.g. DISCO_L072CZ_LRWAN1)
  properties-file   Path to your c_cpp_properties.json; it must already contain
                    the managed entry (see --entry)

Options:
  --profile PROFILE      Build profile: debug, develop or release (default: develop)
  --program-dir DIR      Mbed program directory (default: working directory)
  --entry NAME           Managed configuration entry name (default: Mbed)
`)
}
