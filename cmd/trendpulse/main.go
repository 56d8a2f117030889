// Package main is the entry point for the trendpulse CLI, which runs the
// trend, plan and thumbnail operations from a terminal and prints the
// results as JSON.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(cliOptions{}).Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
