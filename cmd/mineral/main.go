// Package main is the entry point for the mineral CLI.
package main

import (
	"os"

	"github.com/jmylchreest/mineral/cmd/mineral/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
