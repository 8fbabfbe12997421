// Package main is the entry point for the aios installer.
package main

import (
	"os"

	"github.com/thoreinstein/aios/cmd/aios/commands"
	"github.com/thoreinstein/aios/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(errors.ExitCode(err))
	}
}
