package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func echoTitle(s string) {
	fmt.Println(color.CyanString(s))
}

func echoStep(format string, a ...any) {
	fmt.Println(color.WhiteString("---- "+format, a...))
}

func echoDone(format string, a ...any) {
	fmt.Println(color.GreenString(format, a...))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
	os.Exit(1)
}

func fatalf(format string, a ...any) {
	fmt.Fprintln(os.Stderr, color.RedString("Error: "+format, a...))
	os.Exit(1)
}
