// Package main serves as the entry point for geoip-lookup.
// It initializes the CLI and delegates execution to the cmd package.
package main

import (
	"os"

	"github.com/gtriggiano/geoip-lookup/cmd"
)

// main is the application entry point. It invokes the root Cobra command and exits
// with a non-zero status code if command execution fails.
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
