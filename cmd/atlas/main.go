// Package main is the entry point for the Atlas CLI.
package main

import (
	"os"

	"github.com/logos-lang/atlas/cmd/atlas/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
