package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mbedtools/mbed-vscode-tools/internal/properties"
)

func cmdInit(args []string) {
	entry := properties.DefaultEntry
	path := ""

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--entry" && i+1 < len(args):
			entry = args[i+1]
			i++
		case args[i] == "--help" || args[i] == "-h":
			printInitUsage()
			return
		case strings.HasPrefix(args[i], "-"):
			fatalf("unknown option: %s", args[i])
		default:
			if path != "" {
				fatalf("unexpected argument: %s", args[i])
			}
			path = args[i]
		}
	}

	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fatal(err)
		}
		path = filepath.Join(cwd, ".vscode", properties.FileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fatal(err)
	}
	if err := properties.WriteStarter(path, entry); err != nil {
		fatal(err)
	}

	echoDone("%s created with a %q entry.", path, entry)
}

func printInitUsage() {
	fmt.Print(`mbed-vscode-tools init - Write a starter c_cpp_properties.json

Usage:
  mbed-vscode-tools init [path] [options]

Creates a boilerplate properties file containing one empty entry for this
tool to manage. Never overwrites an existing file.

Arguments:
  path                   Output path (default: .vscode/` + properties.FileName + `)

Options:
  --entry NAME           Entry name to create (default: ` + properties.DefaultEntry + `)
`)
}
